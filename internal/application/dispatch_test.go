package application

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/ports"
)

func decodeRequest(t *testing.T, raw string) OperationRequest {
	t.Helper()

	req, err := DecodeRequest(strings.NewReader(raw))
	require.NoError(t, err)
	return req
}

func TestRunRejectsMissingBaseFields(t *testing.T) {
	service, _ := newTestService(&fakeAPI{})

	env := service.Run(context.Background(), decodeRequest(t, `{"operation": "read"}`))

	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "missing required fields")
	assert.Contains(t, env.Error, "spreadsheet_id")
	assert.Contains(t, env.Error, "sheet_name")
	assert.NotContains(t, env.Error, "operation")
}

func TestRunRejectsUnknownOperation(t *testing.T) {
	service, _ := newTestService(&fakeAPI{})

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "teleport"
	}`))

	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "unknown operation: teleport")
}

func TestRunReadProducesDataEnvelope(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{{"Name"}, {"Alice"}}}
	service, _ := newTestService(api)

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "read",
		"range_notation": "A1:A2"
	}`))

	require.True(t, env.Success)
	assert.Equal(t, [][]string{{"Name"}, {"Alice"}}, env.Data)
	require.NotNil(t, env.Rows)
	assert.Equal(t, 2, *env.Rows)
	require.NotNil(t, env.Columns)
	assert.Equal(t, 1, *env.Columns)
	assert.Equal(t, []string{"Leads!A1:A2"}, api.getRanges)
}

func TestRunReadDictsIsReadRecords(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{{"Name"}, {"Alice"}}}
	service, _ := newTestService(api)

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "read_dicts"
	}`))

	require.True(t, env.Success)
	assert.Equal(t, []string{"Name"}, env.Headers)
	assert.Equal(t, []domain.Record{{"Name": "Alice"}}, env.Data)
}

func TestRunAppendRequiresValues(t *testing.T) {
	service, _ := newTestService(&fakeAPI{})

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "append"
	}`))

	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "missing 'values' field for append")
}

func TestRunAppendPassesDateStringsVerbatim(t *testing.T) {
	api := &fakeAPI{appendResult: domain.UpdateSummary{UpdatedRange: "Leads!A5:B5", UpdatedRows: 1}}
	service, _ := newTestService(api)

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "append",
		"values": ["Acme Corp", "2025-11-10"]
	}`))

	require.True(t, env.Success)
	require.Len(t, api.appendRows, 1)
	assert.Equal(t, []any{"Acme Corp", "2025-11-10"}, api.appendRows[0])
	assert.Equal(t, "Leads!A5:B5", env.UpdatedRange)
	require.NotNil(t, env.UpdatedRows)
	assert.Equal(t, int64(1), *env.UpdatedRows)
}

func TestRunAppendRowsEmptyListReportsZeroUpdates(t *testing.T) {
	service := NewService(func(context.Context) (ports.SpreadsheetAPI, error) {
		t.Fatal("connect must not run for an empty append_rows")
		return nil, nil
	})

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "append_rows",
		"rows": []
	}`))

	require.True(t, env.Success)
	require.NotNil(t, env.UpdatedRows)
	assert.Equal(t, int64(0), *env.UpdatedRows)
}

func TestRunUpdateRequiresRangeAndRowShapedValues(t *testing.T) {
	service, _ := newTestService(&fakeAPI{})

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "update",
		"values": [["x"]]
	}`))
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "missing 'range_notation'")

	env = service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "update",
		"range_notation": "E5",
		"values": ["flat"]
	}`))
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "list of row lists")
}

func TestRunUpdateProducesSummaryEnvelope(t *testing.T) {
	api := &fakeAPI{updateResult: domain.UpdateSummary{UpdatedRange: "Leads!E5", UpdatedRows: 1, UpdatedCells: 1}}
	service, _ := newTestService(api)

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "update",
		"range_notation": "E5",
		"values": [["Outreach Sent"]]
	}`))

	require.True(t, env.Success)
	assert.Equal(t, [][]any{{"Outreach Sent"}}, api.updateValues)
	assert.Equal(t, "Leads!E5", env.UpdatedRange)
	require.NotNil(t, env.UpdatedCells)
	assert.Equal(t, int64(1), *env.UpdatedCells)
}

func TestRunFindHitAndMiss(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{{"Header"}, {"Acme Corp"}}}
	service, _ := newTestService(api)

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "find",
		"column": "A",
		"value": "Acme Corp"
	}`))

	require.True(t, env.Success)
	require.NotNil(t, env.Row)
	assert.Equal(t, int64(2), *env.Row)
	require.NotNil(t, env.Found)
	assert.True(t, *env.Found)

	api.getValues = [][]any{{"Header"}}
	env = service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "find",
		"column": "A",
		"value": "Acme Corp"
	}`))

	require.True(t, env.Success)
	assert.Nil(t, env.Row)
	require.NotNil(t, env.Found)
	assert.False(t, *env.Found)
}

func TestRunFindRequiresColumnAndValue(t *testing.T) {
	service, _ := newTestService(&fakeAPI{})

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "find",
		"column": "A"
	}`))

	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "missing 'column' or 'value'")
}

func TestRunFindMatchesEmptyStringWhenValuePresent(t *testing.T) {
	api := &fakeAPI{getValues: [][]any{{"filled"}, {""}}}
	service, _ := newTestService(api)

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "find",
		"column": "A",
		"value": ""
	}`))

	require.True(t, env.Success)
	require.NotNil(t, env.Row)
	assert.Equal(t, int64(2), *env.Row)
}

func TestRunOperationFailureBecomesErrorEnvelope(t *testing.T) {
	api := &fakeAPI{getErr: domain.ErrNotFound}
	service, _ := newTestService(api)

	env := service.Run(context.Background(), decodeRequest(t, `{
		"spreadsheet_id": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"sheet_name": "Leads",
		"operation": "read"
	}`))

	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "spreadsheet or sheet not found")
}

func TestDecodeRequestRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeRequest(strings.NewReader(`{"operation":`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode operation request")
}

func TestEnvelopeJSONShapes(t *testing.T) {
	readJSON, err := json.Marshal(ReadEnvelope(ReadResult{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "data": [], "rows": 0, "columns": 0}`, string(readJSON))

	row := int64(3)
	hitJSON, err := json.Marshal(FindEnvelope(FindResult{Row: &row}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "row": 3, "found": true}`, string(hitJSON))

	missJSON, err := json.Marshal(FindEnvelope(FindResult{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "found": false}`, string(missJSON))

	errJSON, err := json.Marshal(ErrorEnvelope(domain.ErrAuthentication))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "error": "authentication failed"}`, string(errJSON))
}
