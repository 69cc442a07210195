package application

import "github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"

// ReadResult is a rectangular block of cells rendered as strings.
type ReadResult struct {
	Values  [][]string
	Rows    int
	Columns int
}

// RecordsResult is a read where the first row was treated as a header row and
// every following row became a keyed record.
type RecordsResult struct {
	Headers []string
	Records []domain.Record
	Rows    int
}

type AppendResult struct {
	UpdatedRange string
	UpdatedRows  int64
}

type UpdateResult struct {
	UpdatedRange string
	UpdatedRows  int64
	UpdatedCells int64
}

// FindResult reports the 1-indexed row of the first match, relative to the
// searched range. Row is nil when nothing matched; a miss is a result, not an
// error.
type FindResult struct {
	Row *int64
}

type TableAppendResult struct {
	SheetID   int64
	RowsAdded int
}
