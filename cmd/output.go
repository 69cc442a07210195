package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	summaryadapter "github.com/The-Luminous-Group/google-sheets-api-integration/internal/adapters/render/summary"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/application"
)

// writeEnvelope prints one operation outcome and turns a failed envelope into
// a non-nil error so the process exits 1. The envelope is always printed
// first; the returned error only carries the operation name.
func writeEnvelope(cmd *cobra.Command, app *app, envelope application.Envelope, operation string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(envelope); err != nil {
			return err
		}
	} else {
		rendered, err := app.renderer(envelope, summaryadapter.RenderOptions{Operation: operation})
		if err != nil {
			return fmt.Errorf("render summary: %w", err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
			return err
		}
	}

	if !envelope.Success {
		if operation == "" {
			operation = "operation"
		}
		return fmt.Errorf("%s failed", operation)
	}

	return nil
}

// readInput loads a file argument, with "-" meaning stdin.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
