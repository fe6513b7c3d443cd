package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/calexport/internal/google"
)

func newAuthCmd() *cobra.Command {
	var (
		account     string
		credentials string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize access and manage the cached credential",
		Long: `Run the browser consent flow unconditionally and replace the cached
credential. Use this to switch Google accounts or to recover from a revoked
token without waiting for the next export to fail.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := google.ReadClientCredentials(credentials)
			if err != nil {
				return err
			}

			flow := &google.BrowserFlow{Timeout: timeout}
			tok, err := flow.Run(cmd.Context(), google.OAuthConfig(creds))
			if err != nil {
				return err
			}

			store := google.NewFileTokenStore(google.DefaultTokenPath(account))
			if err := store.Save(tok); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Credential cached at %s\n", store.Path())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&account, "account", "default", "Google account name to use")
	cmd.Flags().StringVar(&credentials, "credentials", defaultCredentials, "path to the OAuth client registration file")
	cmd.Flags().DurationVar(&timeout, "auth-timeout", 2*time.Minute, "how long to wait for browser authorization")

	cmd.AddCommand(newAuthStatusCmd(&account))
	cmd.AddCommand(newAuthRevokeCmd(&account))
	return cmd
}

func newAuthStatusCmd(account *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a cached credential exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := google.NewFileTokenStore(google.DefaultTokenPath(*account))
			tok, err := store.Load()
			if err != nil {
				return err
			}

			switch {
			case tok == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "No cached credential; run 'calexport auth' or just 'calexport' to authorize.")
			case tok.Valid():
				fmt.Fprintf(cmd.OutOrStdout(), "Cached credential valid until %s\n", tok.Expiry.Format(time.RFC3339))
			case tok.RefreshToken != "":
				fmt.Fprintln(cmd.OutOrStdout(), "Cached credential expired; it will be refreshed on next use.")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Cached credential expired and not refreshable; re-authorization required.")
			}
			return nil
		},
	}
}

func newAuthRevokeCmd(account *string) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke",
		Short: "Delete the cached credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := google.NewFileTokenStore(google.DefaultTokenPath(*account))
			if err := store.Delete(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cached credential removed.")
			return nil
		},
	}
}
