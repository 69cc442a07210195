package domain

import (
	"fmt"
	"time"
)

// sheetEpoch is day zero of the Sheets serial date system (December 30, 1899).
var sheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Date is a calendar date destined for a date-typed cell. Written through the
// API it becomes a serial day number with a date format, so the sheet can
// sort, filter, and compute on it. Writing the ISO string instead would store
// text.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Serial returns the Sheets serial day number, e.g. 45971 for 2025-11-10.
func (d Date) Serial() float64 {
	return d.Time().Sub(sheetEpoch).Hours() / 24
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// SerialFromTime converts an instant to a serial day number, keeping the time
// of day as the fractional part. The instant is read in UTC; serial numbers
// carry no zone.
func SerialFromTime(t time.Time) float64 {
	return t.UTC().Sub(sheetEpoch).Hours() / 24
}

// NormalizeCell maps rich cell values to what the values API accepts with RAW
// input: dates and times become serial numbers, everything else passes
// through untouched. Strings are never reinterpreted, so a JSON caller who
// sends "2025-11-10" gets exactly that text in the cell.
func NormalizeCell(v any) any {
	switch value := v.(type) {
	case Date:
		return value.Serial()
	case time.Time:
		return SerialFromTime(value)
	default:
		return v
	}
}

// NormalizeRows applies NormalizeCell across a write payload. The input rows
// are left untouched.
func NormalizeRows(rows [][]any) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		normalized := make([]any, len(row))
		for j, cell := range row {
			normalized[j] = NormalizeCell(cell)
		}
		out[i] = normalized
	}
	return out
}
