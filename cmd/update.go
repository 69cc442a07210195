package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/application"
)

func newUpdateCmd(app *app) *cobra.Command {
	var sheetName string
	var rangeNotation string
	var valuesJSON string
	var valuesFile string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "update <spreadsheet>",
		Short: "Overwrite a rectangular range of cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tgt, err := resolveTarget(cmd.Context(), app, args[0], sheetName)
			if err != nil {
				return err
			}

			rows, err := updateInputRows(cmd, valuesJSON, valuesFile)
			if err != nil {
				return err
			}

			var envelope application.Envelope
			err = spinUnlessJSON(cmd, asJSON, "Updating range...", func(ctx context.Context) error {
				result, err := app.service.UpdateRange(ctx, tgt.id, tgt.sheet, rangeNotation, rows)
				if err != nil {
					return err
				}
				envelope = application.UpdateEnvelope(result)
				return nil
			})
			if err != nil {
				envelope = application.ErrorEnvelope(err)
			}

			return writeEnvelope(cmd, app, envelope, application.OpUpdate, asJSON)
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: alias sheet, else "+defaultSheetName+")")
	cmd.Flags().StringVar(&rangeNotation, "range", "", "A1 range to overwrite, such as E5 or A1:C3")
	cmd.Flags().StringVar(&valuesJSON, "values", "", "Inline JSON list of row lists")
	cmd.Flags().StringVar(&valuesFile, "values-file", "", "JSON file with a list of row lists, or - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("range")

	return cmd
}

func updateInputRows(cmd *cobra.Command, valuesJSON, valuesFile string) ([][]any, error) {
	if valuesJSON != "" && valuesFile != "" {
		return nil, fmt.Errorf("use either --values or --values-file, not both")
	}

	var data []byte
	switch {
	case valuesJSON != "":
		data = []byte(valuesJSON)
	case valuesFile != "":
		loaded, err := readInput(cmd, valuesFile)
		if err != nil {
			return nil, err
		}
		data = loaded
	default:
		return nil, fmt.Errorf("either --values or --values-file is required")
	}

	var rows [][]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("update values must be a JSON list of row lists: %w", err)
	}

	return rows, nil
}
