package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/application"
)

func newAppendCmd(app *app) *cobra.Command {
	var sheetName string
	var values []string
	var rowsFile string
	var asTable bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "append <spreadsheet>",
		Short: "Append rows after the last data row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tgt, err := resolveTarget(cmd.Context(), app, args[0], sheetName)
			if err != nil {
				return err
			}

			rows, err := appendInputRows(cmd, values, rowsFile)
			if err != nil {
				return err
			}

			operation := application.OpAppend
			if asTable {
				operation = application.OpAppendTable
			}

			var envelope application.Envelope
			err = spinUnlessJSON(cmd, asJSON, "Appending rows...", func(ctx context.Context) error {
				if asTable {
					result, err := app.service.AppendTable(ctx, tgt.id, tgt.sheet, rows)
					if err != nil {
						return err
					}
					envelope = application.TableAppendEnvelope(result)
					return nil
				}

				result, err := app.service.AppendRows(ctx, tgt.id, tgt.sheet, rows)
				if err != nil {
					return err
				}
				envelope = application.AppendEnvelope(result)
				return nil
			})
			if err != nil {
				envelope = application.ErrorEnvelope(err)
			}

			return writeEnvelope(cmd, app, envelope, operation, asJSON)
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: alias sheet, else "+defaultSheetName+")")
	cmd.Flags().StringSliceVar(&values, "values", nil, "Cell values for a single row, comma separated")
	cmd.Flags().StringVar(&rowsFile, "rows-file", "", "JSON file with a list of row lists, or - for stdin")
	cmd.Flags().BoolVar(&asTable, "table", false, "Append typed cells into the sheet table body")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func appendInputRows(cmd *cobra.Command, values []string, rowsFile string) ([][]any, error) {
	if len(values) > 0 && rowsFile != "" {
		return nil, fmt.Errorf("use either --values or --rows-file, not both")
	}

	if len(values) > 0 {
		row := make([]any, 0, len(values))
		for _, value := range values {
			row = append(row, value)
		}
		return [][]any{row}, nil
	}

	if rowsFile == "" {
		return nil, fmt.Errorf("either --values or --rows-file is required")
	}

	data, err := readInput(cmd, rowsFile)
	if err != nil {
		return nil, err
	}

	var rows [][]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("rows input must be a JSON list of row lists: %w", err)
	}

	return rows, nil
}
