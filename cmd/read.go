package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/application"
)

func newReadCmd(app *app) *cobra.Command {
	var sheetName string
	var rangeNotation string
	var asRecords bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "read <spreadsheet>",
		Short: "Read cell values from a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tgt, err := resolveTarget(cmd.Context(), app, args[0], sheetName)
			if err != nil {
				return err
			}

			operation := application.OpRead
			if asRecords {
				operation = application.OpReadRecords
			}

			var envelope application.Envelope
			err = spinUnlessJSON(cmd, asJSON, "Reading spreadsheet...", func(ctx context.Context) error {
				if asRecords {
					result, err := app.service.ReadRecords(ctx, tgt.id, tgt.sheet, rangeNotation)
					if err != nil {
						return err
					}
					envelope = application.RecordsEnvelope(result)
					return nil
				}

				result, err := app.service.Read(ctx, tgt.id, tgt.sheet, rangeNotation)
				if err != nil {
					return err
				}
				envelope = application.ReadEnvelope(result)
				return nil
			})
			if err != nil {
				envelope = application.ErrorEnvelope(err)
			}

			return writeEnvelope(cmd, app, envelope, operation, asJSON)
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: alias sheet, else "+defaultSheetName+")")
	cmd.Flags().StringVar(&rangeNotation, "range", "", "A1 range such as A1:C10 (default: whole sheet)")
	cmd.Flags().BoolVar(&asRecords, "records", false, "Return rows as header-keyed records")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
