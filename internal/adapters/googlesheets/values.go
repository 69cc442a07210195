package googlesheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

const (
	rawInput   = "RAW"
	insertRows = "INSERT_ROWS"
)

func (c *Client) GetValues(ctx context.Context, id domain.SpreadsheetID, rangeRef string) ([][]any, error) {
	resp, err := c.service.Spreadsheets.Values.Get(string(id), rangeRef).Context(ctx).Do()
	if err != nil {
		return nil, classifyError(err, id)
	}

	return resp.Values, nil
}

func (c *Client) AppendValues(ctx context.Context, id domain.SpreadsheetID, rangeRef string, rows [][]any) (domain.UpdateSummary, error) {
	body := &sheets.ValueRange{Values: rows}

	resp, err := c.service.Spreadsheets.Values.Append(string(id), rangeRef, body).
		ValueInputOption(rawInput).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return domain.UpdateSummary{}, classifyError(err, id)
	}

	summary := domain.UpdateSummary{}
	if resp.Updates != nil {
		summary.UpdatedRange = resp.Updates.UpdatedRange
		summary.UpdatedRows = resp.Updates.UpdatedRows
		summary.UpdatedCells = resp.Updates.UpdatedCells
	}

	return summary, nil
}

func (c *Client) UpdateValues(ctx context.Context, id domain.SpreadsheetID, rangeRef string, values [][]any) (domain.UpdateSummary, error) {
	body := &sheets.ValueRange{Values: values}

	resp, err := c.service.Spreadsheets.Values.Update(string(id), rangeRef, body).
		ValueInputOption(rawInput).
		Context(ctx).
		Do()
	if err != nil {
		return domain.UpdateSummary{}, classifyError(err, id)
	}

	return domain.UpdateSummary{
		UpdatedRange: resp.UpdatedRange,
		UpdatedRows:  resp.UpdatedRows,
		UpdatedCells: resp.UpdatedCells,
	}, nil
}

// AppendCells writes typed cells into the sheet's data body through a
// batchUpdate, so booleans, numbers, dates, and formulas land as their native
// cell types instead of RAW text. Needs the numeric sheet ID, looked up first
// by title.
func (c *Client) AppendCells(ctx context.Context, id domain.SpreadsheetID, sheetName string, rows [][]any) (domain.TableAppend, error) {
	sheetID, err := c.findSheetID(ctx, id, sheetName)
	if err != nil {
		return domain.TableAppend{}, err
	}

	rowData := make([]*sheets.RowData, 0, len(rows))
	for _, row := range rows {
		cells := make([]*sheets.CellData, 0, len(row))
		for _, value := range row {
			cells = append(cells, cellData(value))
		}
		rowData = append(rowData, &sheets.RowData{Values: cells})
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AppendCells: &sheets.AppendCellsRequest{
				SheetId: sheetID,
				Rows:    rowData,
				Fields:  "userEnteredValue,userEnteredFormat.numberFormat",
			},
		}},
	}

	if _, err := c.service.Spreadsheets.BatchUpdate(string(id), req).Context(ctx).Do(); err != nil {
		return domain.TableAppend{}, classifyError(err, id)
	}

	return domain.TableAppend{SheetID: sheetID, RowsAdded: len(rows)}, nil
}

func (c *Client) findSheetID(ctx context.Context, id domain.SpreadsheetID, sheetName string) (int64, error) {
	resp, err := c.service.Spreadsheets.Get(string(id)).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, classifyError(err, id)
	}

	for _, sheet := range resp.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName {
			return sheet.Properties.SheetId, nil
		}
	}

	return 0, fmt.Errorf("%w: sheet %q in %s", domain.ErrNotFound, sheetName, id)
}

// cellData types one value for the cells surface. Strings leading with '='
// become formulas, matching what a user typing into the grid would get.
func cellData(v any) *sheets.CellData {
	switch value := v.(type) {
	case nil:
		return stringCell("")
	case bool:
		return &sheets.CellData{UserEnteredValue: &sheets.ExtendedValue{BoolValue: googleapi.Bool(value)}}
	case int:
		return numberCell(float64(value))
	case int64:
		return numberCell(float64(value))
	case float64:
		return numberCell(value)
	case domain.Date:
		return dateCell(value.Serial(), "DATE", "yyyy-mm-dd")
	case time.Time:
		return dateCell(domain.SerialFromTime(value), "DATE_TIME", "yyyy-mm-dd hh:mm:ss")
	case string:
		if strings.HasPrefix(value, "=") {
			return &sheets.CellData{UserEnteredValue: &sheets.ExtendedValue{FormulaValue: googleapi.String(value)}}
		}
		return stringCell(value)
	default:
		return stringCell(fmt.Sprint(value))
	}
}

func stringCell(s string) *sheets.CellData {
	return &sheets.CellData{UserEnteredValue: &sheets.ExtendedValue{StringValue: googleapi.String(s)}}
}

func numberCell(f float64) *sheets.CellData {
	return &sheets.CellData{UserEnteredValue: &sheets.ExtendedValue{NumberValue: googleapi.Float64(f)}}
}

func dateCell(serial float64, format string, pattern string) *sheets.CellData {
	return &sheets.CellData{
		UserEnteredValue: &sheets.ExtendedValue{NumberValue: googleapi.Float64(serial)},
		UserEnteredFormat: &sheets.CellFormat{
			NumberFormat: &sheets.NumberFormat{Type: format, Pattern: pattern},
		},
	}
}
