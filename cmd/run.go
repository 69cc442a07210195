package cmd

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/application"
)

func newRunCmd(app *app) *cobra.Command {
	var requestFile string

	cmd := &cobra.Command{
		Use:   "run --request <file.json|->",
		Short: "Execute one JSON operation request and print the result envelope",
		Long:  "run reads an operation request (spreadsheet_id, sheet_name, operation plus per-operation fields), executes it, and always prints a JSON result envelope. The exit code is 1 when the envelope reports failure.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(cmd, requestFile)
			if err != nil {
				return err
			}

			operation := "run"
			var envelope application.Envelope
			req, err := application.DecodeRequest(bytes.NewReader(data))
			if err != nil {
				envelope = application.ErrorEnvelope(err)
			} else {
				if req.Operation != "" {
					operation = req.Operation
				}
				envelope = app.service.Run(cmd.Context(), req)
			}

			return writeEnvelope(cmd, app, envelope, operation, true)
		},
	}

	cmd.Flags().StringVar(&requestFile, "request", "", "Operation request JSON file, or - for stdin")
	_ = cmd.MarkFlagRequired("request")

	return cmd
}
