package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

// ConnectFunc authenticates and opens a spreadsheet session. The service
// calls it once per operation, never caching the result, so a rotated
// credential or changed source order takes effect on the very next call.
type ConnectFunc func(ctx context.Context) (ports.SpreadsheetAPI, error)

type Service struct {
	connect ConnectFunc
}

func NewService(connect ConnectFunc) *Service {
	return &Service{connect: connect}
}

// Read fetches a range and renders every cell as a string.
func (s *Service) Read(ctx context.Context, id domain.SpreadsheetID, sheetName, rangeNotation string) (ReadResult, error) {
	api, err := s.connect(ctx)
	if err != nil {
		return ReadResult{}, err
	}

	values, err := api.GetValues(ctx, id, domain.RangeRef(sheetName, rangeNotation))
	if err != nil {
		return ReadResult{}, fmt.Errorf("read range: %w", err)
	}

	rows := stringRows(values)
	result := ReadResult{Values: rows, Rows: len(rows)}
	if len(rows) > 0 {
		result.Columns = len(rows[0])
	}

	return result, nil
}

// ReadRecords reads a range and zips the first row as headers over the rest.
func (s *Service) ReadRecords(ctx context.Context, id domain.SpreadsheetID, sheetName, rangeNotation string) (RecordsResult, error) {
	read, err := s.Read(ctx, id, sheetName, rangeNotation)
	if err != nil {
		return RecordsResult{}, err
	}

	headers, records := domain.ZipRecords(read.Values)

	return RecordsResult{Headers: headers, Records: records, Rows: len(records)}, nil
}

// AppendRow appends a single row after the sheet's existing data.
func (s *Service) AppendRow(ctx context.Context, id domain.SpreadsheetID, sheetName string, values []any) (AppendResult, error) {
	return s.AppendRows(ctx, id, sheetName, [][]any{values})
}

// AppendRows appends rows after the sheet's existing data. An empty row list
// is a no-op reporting zero updates; the service is not contacted.
func (s *Service) AppendRows(ctx context.Context, id domain.SpreadsheetID, sheetName string, rows [][]any) (AppendResult, error) {
	if len(rows) == 0 {
		return AppendResult{}, nil
	}

	api, err := s.connect(ctx)
	if err != nil {
		return AppendResult{}, err
	}

	summary, err := api.AppendValues(ctx, id, domain.RangeRef(sheetName, ""), domain.NormalizeRows(rows))
	if err != nil {
		return AppendResult{}, fmt.Errorf("append rows: %w", err)
	}

	return AppendResult{UpdatedRange: summary.UpdatedRange, UpdatedRows: summary.UpdatedRows}, nil
}

// AppendTable appends typed rows to the sheet's data body, so numbers,
// booleans, dates, and formulas keep their cell types. An empty row list is a
// no-op.
func (s *Service) AppendTable(ctx context.Context, id domain.SpreadsheetID, sheetName string, rows [][]any) (TableAppendResult, error) {
	if len(rows) == 0 {
		return TableAppendResult{}, nil
	}

	api, err := s.connect(ctx)
	if err != nil {
		return TableAppendResult{}, err
	}

	result, err := api.AppendCells(ctx, id, sheetName, rows)
	if err != nil {
		return TableAppendResult{}, fmt.Errorf("append table rows: %w", err)
	}

	return TableAppendResult{SheetID: result.SheetID, RowsAdded: result.RowsAdded}, nil
}

// UpdateRange overwrites exactly the addressed cells. Writing the same values
// to the same range twice leaves the sheet identical.
func (s *Service) UpdateRange(ctx context.Context, id domain.SpreadsheetID, sheetName, rangeNotation string, values [][]any) (UpdateResult, error) {
	if rangeNotation == "" {
		return UpdateResult{}, errors.New("range notation is required for update")
	}

	api, err := s.connect(ctx)
	if err != nil {
		return UpdateResult{}, err
	}

	summary, err := api.UpdateValues(ctx, id, domain.RangeRef(sheetName, rangeNotation), domain.NormalizeRows(values))
	if err != nil {
		return UpdateResult{}, fmt.Errorf("update range: %w", err)
	}

	return UpdateResult{
		UpdatedRange: summary.UpdatedRange,
		UpdatedRows:  summary.UpdatedRows,
		UpdatedCells: summary.UpdatedCells,
	}, nil
}

// FindRow scans a column for the first exact string match and reports its
// 1-indexed row relative to the searched range. Rows with an empty leading
// cell never match.
func (s *Service) FindRow(ctx context.Context, id domain.SpreadsheetID, sheetName, column, value, rangeNotation string) (FindResult, error) {
	searchRange := rangeNotation
	if searchRange == "" {
		columnRange, err := domain.ColumnRange(column)
		if err != nil {
			return FindResult{}, err
		}
		searchRange = columnRange
	}

	api, err := s.connect(ctx)
	if err != nil {
		return FindResult{}, err
	}

	values, err := api.GetValues(ctx, id, domain.RangeRef(sheetName, searchRange))
	if err != nil {
		return FindResult{}, fmt.Errorf("scan column: %w", err)
	}

	for i, row := range values {
		if len(row) == 0 {
			continue
		}
		if cellString(row[0]) == value {
			rowNumber := int64(i + 1)
			return FindResult{Row: &rowNumber}, nil
		}
	}

	return FindResult{}, nil
}

func stringRows(values [][]any) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellString(cell)
		}
		rows[i] = cells
	}

	return rows
}

func cellString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}
