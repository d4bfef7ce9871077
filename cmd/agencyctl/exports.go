package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOut string

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "Manage archived exports",
}

var exportsDownloadCmd = &cobra.Command{
	Use:   "download KEY",
	Short: "Download an archived export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		w, closeFn, err := output(cmd.OutOrStdout(), exportOut)
		if err != nil {
			return err
		}
		defer closeFn()
		if err := newClient().DownloadExport(ctx, args[0], w); err != nil {
			return fmt.Errorf("download export: %w", err)
		}
		return nil
	},
}

var exportsDeleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Delete an archived export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		if err := newClient().DeleteExport(ctx, args[0]); err != nil {
			return fmt.Errorf("delete export: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
		return nil
	},
}

func init() {
	exportsDownloadCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write CSV to file instead of stdout")
	exportsCmd.AddCommand(exportsDownloadCmd, exportsDeleteCmd)
}
