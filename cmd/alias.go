package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

func newAliasCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage saved spreadsheet aliases",
	}

	cmd.AddCommand(
		newAliasSetCmd(app),
		newAliasListCmd(app),
		newAliasRemoveCmd(app),
	)

	return cmd
}

func newAliasSetCmd(app *app) *cobra.Command {
	var sheetName string

	cmd := &cobra.Command{
		Use:   "set <name> <spreadsheet-id-or-url>",
		Short: "Save a spreadsheet alias",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseSpreadsheetRef(args[1])
			if err != nil {
				return err
			}

			alias := domain.Alias{Name: args[0], SpreadsheetID: id, Sheet: sheetName}
			if err := app.registry.Save(cmd.Context(), alias); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s -> %s\n", alias.Name, alias.SpreadsheetID)
			return err
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Default sheet for this alias")

	return cmd
}

func newAliasListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aliases, err := app.registry.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, alias := range aliases {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", alias.Name, alias.SpreadsheetID, alias.Sheet)
			}

			return nil
		},
	}
}

func newAliasRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a saved alias",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.registry.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}
