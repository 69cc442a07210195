package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// SpreadsheetID is the document identifier from a Google Sheets URL.
type SpreadsheetID string

func (id SpreadsheetID) String() string { return string(id) }

var (
	spreadsheetURL = regexp.MustCompile(`^https://docs\.google\.com/spreadsheets/d/([^/]+)(?:/.*)?$`)
	spreadsheetID  = regexp.MustCompile(`^[a-zA-Z0-9_-]{20,}$`)
	columnLetters  = regexp.MustCompile(`^[A-Za-z]{1,3}$`)
)

// ParseSpreadsheetRef accepts either a full spreadsheet URL or a bare document
// ID and returns the ID.
func ParseSpreadsheetRef(ref string) (SpreadsheetID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("spreadsheet reference is empty")
	}

	if match := spreadsheetURL.FindStringSubmatch(ref); match != nil {
		return SpreadsheetID(match[1]), nil
	}

	if strings.Contains(ref, "://") {
		return "", fmt.Errorf("invalid spreadsheet URL %q", ref)
	}

	if !spreadsheetID.MatchString(ref) {
		return "", fmt.Errorf("invalid spreadsheet ID %q", ref)
	}

	return SpreadsheetID(ref), nil
}

// RangeRef builds an A1 range reference. An empty rangeNotation addresses the
// whole sheet.
func RangeRef(sheetName, rangeNotation string) string {
	if rangeNotation == "" {
		return sheetName
	}
	return fmt.Sprintf("%s!%s", sheetName, rangeNotation)
}

// ColumnRange builds the full-column A1 notation ("A" -> "A:A") used by row
// searches when no explicit range is given.
func ColumnRange(column string) (string, error) {
	column = strings.ToUpper(strings.TrimSpace(column))
	if !columnLetters.MatchString(column) {
		return "", fmt.Errorf("invalid column letter %q", column)
	}
	return fmt.Sprintf("%s:%s", column, column), nil
}

// Record is one data row keyed by its header-row labels.
type Record map[string]string

// ZipRecords pairs the first row of a read result with each subsequent row.
// Rows shorter than the header are padded with empty strings, longer rows are
// truncated, so every record carries exactly the header's keys.
func ZipRecords(values [][]string) (headers []string, records []Record) {
	if len(values) == 0 {
		return nil, nil
	}

	headers = values[0]
	records = make([]Record, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make(Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return headers, records
}

// UpdateSummary reports what a values write changed.
type UpdateSummary struct {
	UpdatedRange string
	UpdatedRows  int64
	UpdatedCells int64
}

// TableAppend reports a structured append into a sheet's data body.
type TableAppend struct {
	SheetID   int64
	RowsAdded int
}

// Alias is a saved spreadsheet shorthand in the local registry.
type Alias struct {
	Name          string
	SpreadsheetID SpreadsheetID
	Sheet         string
}

// Validate rejects aliases that could not round-trip through the registry.
func (a Alias) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("alias name is empty")
	}
	if a.SpreadsheetID == "" {
		return fmt.Errorf("alias %q has no spreadsheet ID", a.Name)
	}
	return nil
}
