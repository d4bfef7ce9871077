package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

var (
	authEmail    string
	authPassword string
	authName     string
	authKind     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and print its access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		res, err := newClient().Register(ctx, authEmail, authPassword, authName, domain.AccountKind(authKind))
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "registered %s (%s)\n", res.Account.Email, res.Account.Kind)
		fmt.Fprintln(cmd.OutOrStdout(), res.AccessToken)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print an access token for AGENCYCTL_TOKEN",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		res, err := newClient().Login(ctx, authEmail, authPassword)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.AccessToken)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "account email")
		c.Flags().StringVar(&authPassword, "password", "", "account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	registerCmd.Flags().StringVar(&authName, "name", "", "display name")
	registerCmd.Flags().StringVar(&authKind, "type", string(domain.AccountKindAgency), "account type: agency or client")
}
