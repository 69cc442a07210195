package ports

import (
	"context"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

// SpreadsheetRegistry stores local spreadsheet aliases.
type SpreadsheetRegistry interface {
	Get(ctx context.Context, name string) (domain.Alias, error)
	List(ctx context.Context) ([]domain.Alias, error)
	Save(ctx context.Context, alias domain.Alias) error
	Delete(ctx context.Context, name string) error
}
