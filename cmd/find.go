package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/application"
)

func newFindCmd(app *app) *cobra.Command {
	var sheetName string
	var column string
	var value string
	var rangeNotation string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "find <spreadsheet>",
		Short: "Find the first row whose column matches a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tgt, err := resolveTarget(cmd.Context(), app, args[0], sheetName)
			if err != nil {
				return err
			}

			var envelope application.Envelope
			err = spinUnlessJSON(cmd, asJSON, "Searching column...", func(ctx context.Context) error {
				result, err := app.service.FindRow(ctx, tgt.id, tgt.sheet, column, value, rangeNotation)
				if err != nil {
					return err
				}
				envelope = application.FindEnvelope(result)
				return nil
			})
			if err != nil {
				envelope = application.ErrorEnvelope(err)
			}

			return writeEnvelope(cmd, app, envelope, application.OpFind, asJSON)
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: alias sheet, else "+defaultSheetName+")")
	cmd.Flags().StringVar(&column, "column", "", "Column letter to search, such as A")
	cmd.Flags().StringVar(&value, "value", "", "Exact cell value to match")
	cmd.Flags().StringVar(&rangeNotation, "range", "", "Restrict the search to an A1 range")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
