package ports

import (
	"context"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

// SpreadsheetAPI is an authenticated session with the values surface of one
// spreadsheet service. Implementations perform exactly one remote call per
// method and never retry.
type SpreadsheetAPI interface {
	GetValues(ctx context.Context, id domain.SpreadsheetID, rangeRef string) ([][]any, error)
	AppendValues(ctx context.Context, id domain.SpreadsheetID, rangeRef string, rows [][]any) (domain.UpdateSummary, error)
	UpdateValues(ctx context.Context, id domain.SpreadsheetID, rangeRef string, values [][]any) (domain.UpdateSummary, error)
	AppendCells(ctx context.Context, id domain.SpreadsheetID, sheetName string, rows [][]any) (domain.TableAppend, error)
}
