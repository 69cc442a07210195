package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/googlesheets"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect credential resolution",
	}

	cmd.AddCommand(newAuthCheckCmd(app))

	return cmd
}

// newAuthCheckCmd walks the credential chain once and reports which source
// won. The credential itself never reaches the output, only its origin and
// the identity baked into the key document.
func newAuthCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve a credential and print which source produced it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cred, err := app.resolver.Resolve(cmd.Context())
			if err != nil {
				return err
			}

			key, _, err := googlesheets.LoadKeyDocument(cred)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "source: %s\n", cred.Source)
			_, _ = fmt.Fprintf(out, "credential: %s\n", cred.Kind)
			_, _ = fmt.Fprintf(out, "service account: %s\n", key.ClientEmail)
			if key.ProjectID != "" {
				_, _ = fmt.Fprintf(out, "project: %s\n", key.ProjectID)
			}

			return nil
		},
	}
}
