package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/agencydesk-backend/internal/directory"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	"github.com/heartmarshall/agencydesk-backend/pkg/sdk"
)

var (
	filter   domain.SearchCriteria
	loadAll  bool
	outPath  string
	archive  bool
	yes      bool
	setState string
	setEmp   string
	setAddr  string
	addNote  string
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List, export, import and bulk-edit clients",
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search clients, one page by default or every match with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		ctrl := directory.NewController(newClient())
		if err := search(ctx, ctrl, loadAll); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderClients(ctrl.Clients()))
		if ctrl.HasMore() {
			fmt.Fprintln(cmd.ErrOrStderr(), "more results available, use --all")
		}
		return nil
	},
}

var clientsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every matching client as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		api := newClient()
		ctrl := directory.NewController(api)
		if err := search(ctx, ctrl, true); err != nil {
			return err
		}

		if archive {
			key, err := api.ArchiveExport(ctx, ids(ctrl.Clients()))
			if err != nil {
				return fmt.Errorf("archive export: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		}

		w, closeFn, err := output(cmd.OutOrStdout(), outPath)
		if err != nil {
			return err
		}
		defer closeFn()
		return ctrl.ExportCSV(w)
	},
}

var clientsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import clients from a CSV file with a header row",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		res, err := newClient().ImportCSV(ctx, f)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d imported, %d skipped\n", res.Imported, res.Skipped)
		for _, e := range res.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "line %d %s: %s\n", e.Line, e.Name, e.Reason)
		}
		return nil
	},
}

var clientsBulkUpdateCmd = &cobra.Command{
	Use:   "bulk-update",
	Short: "Apply the same change to every matching client",
	RunE: func(cmd *cobra.Command, args []string) error {
		patch, err := patchFromFlags(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		ctrl := directory.NewController(newClient())
		if err := selectMatches(ctx, ctrl); err != nil {
			return err
		}

		res, err := ctrl.BulkUpdate(ctx, patch)
		return reportBulk(cmd.OutOrStdout(), "updated", res, err)
	},
}

var clientsBulkDeleteCmd = &cobra.Command{
	Use:   "bulk-delete",
	Short: "Delete every matching client (requires --yes)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if filter.Normalize().IsEmpty() {
			return errors.New("refusing to delete without a filter")
		}

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		ctrl := directory.NewController(newClient())
		if err := selectMatches(ctx, ctrl); err != nil {
			return err
		}

		res, err := ctrl.BulkDelete(ctx, yes)
		if errors.Is(err, domain.ErrConfirmationRequired) {
			return fmt.Errorf("%d clients match; rerun with --yes to delete them", ctrl.Selection().Len())
		}
		return reportBulk(cmd.OutOrStdout(), "deleted", res, err)
	},
}

func init() {
	for _, c := range []*cobra.Command{clientsListCmd, clientsExportCmd, clientsBulkUpdateCmd, clientsBulkDeleteCmd} {
		f := c.Flags()
		f.StringVar(&filter.Name, "nome", "", "name prefix")
		f.StringVar(&filter.Email, "email", "", "exact email")
		f.StringVar(&filter.Phone, "telefone", "", "exact phone")
		f.StringVar(&filter.Company, "empresa", "", "company prefix")
		f.StringVar(&filter.Document, "documento", "", "exact document")
	}
	clientsListCmd.Flags().BoolVar(&loadAll, "all", false, "load every page")
	clientsExportCmd.Flags().StringVarP(&outPath, "out", "o", "", "write CSV to file instead of stdout")
	clientsExportCmd.Flags().BoolVar(&archive, "archive", false, "store the export on the server and print its key")
	clientsBulkUpdateCmd.Flags().StringVar(&setState, "set-status", "", "new status")
	clientsBulkUpdateCmd.Flags().StringVar(&setEmp, "set-empresa", "", "new company")
	clientsBulkUpdateCmd.Flags().StringVar(&setAddr, "set-endereco", "", "new address")
	clientsBulkUpdateCmd.Flags().StringVar(&addNote, "add-note", "", "note appended to every client")
	clientsBulkDeleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	clientsCmd.AddCommand(clientsListCmd, clientsExportCmd, clientsImportCmd, clientsBulkUpdateCmd, clientsBulkDeleteCmd)
}

func search(ctx context.Context, ctrl *directory.Controller, all bool) error {
	if err := ctrl.Search(ctx, filter); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if all {
		if err := ctrl.LoadAll(ctx); err != nil {
			return fmt.Errorf("load: %w", err)
		}
	}
	return nil
}

// selectMatches loads every match and selects all of them.
func selectMatches(ctx context.Context, ctrl *directory.Controller) error {
	if err := search(ctx, ctrl, true); err != nil {
		return err
	}
	for _, c := range ctrl.Clients() {
		ctrl.Toggle(c.ID)
	}
	return nil
}

// patchFromFlags builds a patch from the --set-* flags that were given.
func patchFromFlags(cmd *cobra.Command) (domain.ClientPatch, error) {
	var patch domain.ClientPatch
	f := cmd.Flags()
	if f.Changed("set-status") {
		status := domain.ClientStatus(setState)
		patch.Status = &status
	}
	if f.Changed("set-empresa") {
		patch.Company = &setEmp
	}
	if f.Changed("set-endereco") {
		patch.Address = &setAddr
	}
	if addNote != "" {
		patch.Notes = []string{addNote}
	}
	return patch, patch.Validate()
}

func reportBulk(w io.Writer, verb string, res *sdk.BulkResult, err error) error {
	if res != nil {
		fmt.Fprintf(w, "%d of %d clients %s\n", res.Succeeded, res.Requested, verb)
		for _, f := range res.Failures {
			fmt.Fprintf(w, "  %s: %s\n", f.ID, f.Error)
		}
	}
	return err
}

func renderClients(clients []domain.Client) string {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{c.Name, c.Email, c.Phone, c.Company, string(c.Status), strings.Join(c.Notes, "; ")})
	}
	return renderTable([]string{"Nome", "Email", "Telefone", "Empresa", "Status", "Anotações"}, rows)
}

func ids(clients []domain.Client) []uuid.UUID {
	out := make([]uuid.UUID, len(clients))
	for i, c := range clients {
		out[i] = c.ID
	}
	return out
}

func output(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
