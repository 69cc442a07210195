package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

// Operation names accepted in a JSON operation request.
const (
	OpRead        = "read"
	OpReadRecords = "read_records"
	OpReadDicts   = "read_dicts" // legacy alias for read_records
	OpAppend      = "append"
	OpAppendRows  = "append_rows"
	OpAppendTable = "append_table"
	OpUpdate      = "update"
	OpFind        = "find"
)

// OperationRequest describes one spreadsheet operation as data, the dispatch
// form decoded from JSON. Values serves double duty the way the JSON contract
// defines it: a single row for append, a list of row lists for update.
type OperationRequest struct {
	SpreadsheetID string  `json:"spreadsheet_id"`
	SheetName     string  `json:"sheet_name"`
	Operation     string  `json:"operation"`
	RangeNotation string  `json:"range_notation,omitempty"`
	Values        []any   `json:"values,omitempty"`
	Rows          [][]any `json:"rows,omitempty"`
	Column        string  `json:"column,omitempty"`
	Value         *string `json:"value,omitempty"`
}

// DecodeRequest parses one operation request from r.
func DecodeRequest(r io.Reader) (OperationRequest, error) {
	var req OperationRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return OperationRequest{}, fmt.Errorf("decode operation request: %w", err)
	}

	return req, nil
}

// Run validates and dispatches one operation request. Every outcome is an
// envelope; Run never panics and never returns a Go error, so automation
// callers always get well-formed JSON.
func (s *Service) Run(ctx context.Context, req OperationRequest) Envelope {
	if err := req.validate(); err != nil {
		return ErrorEnvelope(err)
	}

	id := domain.SpreadsheetID(req.SpreadsheetID)

	switch req.Operation {
	case OpRead:
		result, err := s.Read(ctx, id, req.SheetName, req.RangeNotation)
		if err != nil {
			return ErrorEnvelope(err)
		}
		return ReadEnvelope(result)

	case OpReadRecords, OpReadDicts:
		result, err := s.ReadRecords(ctx, id, req.SheetName, req.RangeNotation)
		if err != nil {
			return ErrorEnvelope(err)
		}
		return RecordsEnvelope(result)

	case OpAppend:
		if req.Values == nil {
			return ErrorEnvelope(errors.New("missing 'values' field for append operation"))
		}
		result, err := s.AppendRow(ctx, id, req.SheetName, req.Values)
		if err != nil {
			return ErrorEnvelope(err)
		}
		return AppendEnvelope(result)

	case OpAppendRows:
		if req.Rows == nil {
			return ErrorEnvelope(errors.New("missing 'rows' field for append_rows operation"))
		}
		result, err := s.AppendRows(ctx, id, req.SheetName, req.Rows)
		if err != nil {
			return ErrorEnvelope(err)
		}
		return AppendEnvelope(result)

	case OpAppendTable:
		if req.Rows == nil {
			return ErrorEnvelope(errors.New("missing 'rows' field for append_table operation"))
		}
		result, err := s.AppendTable(ctx, id, req.SheetName, req.Rows)
		if err != nil {
			return ErrorEnvelope(err)
		}
		return TableAppendEnvelope(result)

	case OpUpdate:
		if req.RangeNotation == "" {
			return ErrorEnvelope(errors.New("missing 'range_notation' field for update operation"))
		}
		if req.Values == nil {
			return ErrorEnvelope(errors.New("missing 'values' field for update operation"))
		}
		rows, err := rowsFromValues(req.Values)
		if err != nil {
			return ErrorEnvelope(err)
		}
		result, err := s.UpdateRange(ctx, id, req.SheetName, req.RangeNotation, rows)
		if err != nil {
			return ErrorEnvelope(err)
		}
		return UpdateEnvelope(result)

	case OpFind:
		if req.Column == "" || req.Value == nil {
			return ErrorEnvelope(errors.New("missing 'column' or 'value' field for find operation"))
		}
		result, err := s.FindRow(ctx, id, req.SheetName, req.Column, *req.Value, req.RangeNotation)
		if err != nil {
			return ErrorEnvelope(err)
		}
		return FindEnvelope(result)

	default:
		return ErrorEnvelope(fmt.Errorf("unknown operation: %s", req.Operation))
	}
}

func (req OperationRequest) validate() error {
	var missing []string
	if req.SpreadsheetID == "" {
		missing = append(missing, "spreadsheet_id")
	}
	if req.SheetName == "" {
		missing = append(missing, "sheet_name")
	}
	if req.Operation == "" {
		missing = append(missing, "operation")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	return nil
}

// rowsFromValues reshapes an update payload, where each element of values
// must itself be a row list.
func rowsFromValues(values []any) ([][]any, error) {
	rows := make([][]any, 0, len(values))
	for _, value := range values {
		row, ok := value.([]any)
		if !ok {
			return nil, errors.New("'values' for update must be a list of row lists")
		}
		rows = append(rows, row)
	}

	return rows, nil
}
