package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

const testID = domain.SpreadsheetID("1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms")

// fakeAPI records every call so tests can assert ranges and payloads without
// a network.
type fakeAPI struct {
	getRanges    []string
	getValues    [][]any
	getErr       error
	appendRange  string
	appendRows   [][]any
	appendResult domain.UpdateSummary
	appendErr    error
	updateRange  string
	updateValues [][]any
	updateResult domain.UpdateSummary
	cellsSheet   string
	cellsRows    [][]any
	cellsResult  domain.TableAppend
}

func (f *fakeAPI) GetValues(_ context.Context, _ domain.SpreadsheetID, rangeRef string) ([][]any, error) {
	f.getRanges = append(f.getRanges, rangeRef)
	return f.getValues, f.getErr
}

func (f *fakeAPI) AppendValues(_ context.Context, _ domain.SpreadsheetID, rangeRef string, rows [][]any) (domain.UpdateSummary, error) {
	f.appendRange = rangeRef
	f.appendRows = rows
	return f.appendResult, f.appendErr
}

func (f *fakeAPI) UpdateValues(_ context.Context, _ domain.SpreadsheetID, rangeRef string, values [][]any) (domain.UpdateSummary, error) {
	f.updateRange = rangeRef
	f.updateValues = values
	return f.updateResult, nil
}

func (f *fakeAPI) AppendCells(_ context.Context, _ domain.SpreadsheetID, sheetName string, rows [][]any) (domain.TableAppend, error) {
	f.cellsSheet = sheetName
	f.cellsRows = rows
	return f.cellsResult, nil
}

// newTestService wires a service whose connect hands out api and counts how
// often it ran.
func newTestService(api ports.SpreadsheetAPI) (*Service, *int) {
	connects := 0
	service := NewService(func(context.Context) (ports.SpreadsheetAPI, error) {
		connects++
		return api, nil
	})

	return service, &connects
}

func TestServiceReadBuildsRangeAndRendersStrings(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{
		{"Name", "Email"},
		{"Alice", float64(42)},
	}}
	service, _ := newTestService(api)

	result, err := service.Read(context.Background(), testID, "Leads", "A1:B2")
	require.NoError(t, err)

	assert.Equal(t, []string{"Leads!A1:B2"}, api.getRanges)
	assert.Equal(t, [][]string{{"Name", "Email"}, {"Alice", "42"}}, result.Values)
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, 2, result.Columns)
}

func TestServiceReadWholeSheetWhenRangeEmpty(t *testing.T) {
	api := &fakeAPI{}
	service, _ := newTestService(api)

	result, err := service.Read(context.Background(), testID, "Leads", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Leads"}, api.getRanges)
	assert.Equal(t, 0, result.Rows)
	assert.Equal(t, 0, result.Columns)
}

func TestServiceReadRecordsZipsHeaders(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{
		{"Name", "Email"},
		{"Alice", "a@x.com"},
		{"Bob"},
	}}
	service, _ := newTestService(api)

	result, err := service.ReadRecords(context.Background(), testID, "Leads", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Email"}, result.Headers)
	require.Equal(t, 2, result.Rows)
	assert.Equal(t, domain.Record{"Name": "Alice", "Email": "a@x.com"}, result.Records[0])
	assert.Equal(t, domain.Record{"Name": "Bob", "Email": ""}, result.Records[1])
}

func TestServiceConnectsOncePerOperation(t *testing.T) {
	api := &fakeAPI{}
	service, connects := newTestService(api)

	_, err := service.Read(context.Background(), testID, "Leads", "")
	require.NoError(t, err)
	_, err = service.ReadRecords(context.Background(), testID, "Leads", "")
	require.NoError(t, err)
	_, err = service.AppendRow(context.Background(), testID, "Leads", []any{"x"})
	require.NoError(t, err)

	assert.Equal(t, 3, *connects)
}

func TestServiceConnectErrorPassesThroughUnwrapped(t *testing.T) {
	authErr := domain.ErrAuthentication
	service := NewService(func(context.Context) (ports.SpreadsheetAPI, error) {
		return nil, authErr
	})

	_, err := service.Read(context.Background(), testID, "Leads", "")
	require.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestServiceAppendRowTargetsWholeSheet(t *testing.T) {
	api := &fakeAPI{appendResult: domain.UpdateSummary{UpdatedRange: "Leads!A5:C5", UpdatedRows: 1}}
	service, _ := newTestService(api)

	result, err := service.AppendRow(context.Background(), testID, "Leads", []any{"Acme Corp", "John Doe", "CEO"})
	require.NoError(t, err)

	assert.Equal(t, "Leads", api.appendRange)
	assert.Equal(t, [][]any{{"Acme Corp", "John Doe", "CEO"}}, api.appendRows)
	assert.Equal(t, "Leads!A5:C5", result.UpdatedRange)
	assert.Equal(t, int64(1), result.UpdatedRows)
}

func TestServiceAppendRowsEmptyListSkipsTheService(t *testing.T) {
	service := NewService(func(context.Context) (ports.SpreadsheetAPI, error) {
		return nil, errors.New("connect must not run for an empty append")
	})

	result, err := service.AppendRows(context.Background(), testID, "Leads", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.UpdatedRows)
	assert.Empty(t, result.UpdatedRange)
}

func TestServiceAppendRowsConvertsDatesToSerials(t *testing.T) {
	api := &fakeAPI{}
	service, _ := newTestService(api)

	_, err := service.AppendRows(context.Background(), testID, "Leads", [][]any{
		{"Acme Corp", domain.Date{Year: 2025, Month: time.November, Day: 10}},
	})
	require.NoError(t, err)

	require.Len(t, api.appendRows, 1)
	assert.Equal(t, []any{"Acme Corp", float64(45971)}, api.appendRows[0])
}

func TestServiceAppendTableDelegatesTypedRows(t *testing.T) {
	api := &fakeAPI{cellsResult: domain.TableAppend{SheetID: 123, RowsAdded: 2}}
	service, _ := newTestService(api)

	rows := [][]any{{"Acme", true}, {"Beta", false}}
	result, err := service.AppendTable(context.Background(), testID, "Leads", rows)
	require.NoError(t, err)

	assert.Equal(t, "Leads", api.cellsSheet)
	assert.Equal(t, rows, api.cellsRows)
	assert.Equal(t, int64(123), result.SheetID)
	assert.Equal(t, 2, result.RowsAdded)
}

func TestServiceAppendTableEmptyListSkipsTheService(t *testing.T) {
	service := NewService(func(context.Context) (ports.SpreadsheetAPI, error) {
		return nil, errors.New("connect must not run for an empty append")
	})

	result, err := service.AppendTable(context.Background(), testID, "Leads", [][]any{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.RowsAdded)
}

func TestServiceUpdateRangeRequiresRange(t *testing.T) {
	service, _ := newTestService(&fakeAPI{})

	_, err := service.UpdateRange(context.Background(), testID, "Leads", "", [][]any{{"x"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "range notation is required")
}

func TestServiceUpdateRangeAddressesCells(t *testing.T) {
	api := &fakeAPI{updateResult: domain.UpdateSummary{UpdatedRange: "Leads!E5", UpdatedRows: 1, UpdatedCells: 1}}
	service, _ := newTestService(api)

	result, err := service.UpdateRange(context.Background(), testID, "Leads", "E5", [][]any{{"Outreach Sent"}})
	require.NoError(t, err)

	assert.Equal(t, "Leads!E5", api.updateRange)
	assert.Equal(t, [][]any{{"Outreach Sent"}}, api.updateValues)
	assert.Equal(t, int64(1), result.UpdatedCells)
}

func TestServiceFindRowFirstMatchWins(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{
		{"Header"},
		{"Acme Corp"},
		{},
		{"Acme Corp"},
	}}
	service, _ := newTestService(api)

	result, err := service.FindRow(context.Background(), testID, "Leads", "A", "Acme Corp", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Leads!A:A"}, api.getRanges)
	require.NotNil(t, result.Row)
	assert.Equal(t, int64(2), *result.Row)
}

func TestServiceFindRowMissIsAResult(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{{"Other"}}}
	service, _ := newTestService(api)

	result, err := service.FindRow(context.Background(), testID, "Leads", "A", "Acme Corp", "")
	require.NoError(t, err)
	assert.Nil(t, result.Row)
}

func TestServiceFindRowHonorsExplicitRange(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{{"Acme Corp"}}}
	service, _ := newTestService(api)

	result, err := service.FindRow(context.Background(), testID, "Leads", "A", "Acme Corp", "A5:A100")
	require.NoError(t, err)

	assert.Equal(t, []string{"Leads!A5:A100"}, api.getRanges)
	require.NotNil(t, result.Row)
	assert.Equal(t, int64(1), *result.Row, "row numbers are relative to the searched range")
}

func TestServiceFindRowRejectsBadColumn(t *testing.T) {
	service, _ := newTestService(&fakeAPI{})

	_, err := service.FindRow(context.Background(), testID, "Leads", "A1", "x", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid column letter")
}

func TestServiceReadWrapsAPIFailures(t *testing.T) {
	api := &fakeAPI{getErr: domain.ErrNotFound}
	service, _ := newTestService(api)

	_, err := service.Read(context.Background(), testID, "Leads", "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
