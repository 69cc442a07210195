package application

import "github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"

// Envelope is the uniform result shape automation callers consume: success
// plus the fields of whichever operation ran, or success false with a single
// error string. Error strings name credential source kinds and API status,
// never secret values.
type Envelope struct {
	Success      bool     `json:"success"`
	Data         any      `json:"data,omitempty"`
	Rows         *int     `json:"rows,omitempty"`
	Columns      *int     `json:"columns,omitempty"`
	Headers      []string `json:"headers,omitempty"`
	UpdatedRange string   `json:"updated_range,omitempty"`
	UpdatedRows  *int64   `json:"updated_rows,omitempty"`
	UpdatedCells *int64   `json:"updated_cells,omitempty"`
	Row          *int64   `json:"row,omitempty"`
	Found        *bool    `json:"found,omitempty"`
	SheetID      *int64   `json:"sheet_id,omitempty"`
	RowsAdded    *int     `json:"rows_added,omitempty"`
	Error        string   `json:"error,omitempty"`
}

func ReadEnvelope(result ReadResult) Envelope {
	data := result.Values
	if data == nil {
		data = [][]string{}
	}

	return Envelope{
		Success: true,
		Data:    data,
		Rows:    ptr(result.Rows),
		Columns: ptr(result.Columns),
	}
}

func RecordsEnvelope(result RecordsResult) Envelope {
	data := result.Records
	if data == nil {
		data = []domain.Record{}
	}

	return Envelope{
		Success: true,
		Data:    data,
		Rows:    ptr(result.Rows),
		Headers: result.Headers,
	}
}

func AppendEnvelope(result AppendResult) Envelope {
	return Envelope{
		Success:      true,
		UpdatedRange: result.UpdatedRange,
		UpdatedRows:  ptr(result.UpdatedRows),
	}
}

func UpdateEnvelope(result UpdateResult) Envelope {
	return Envelope{
		Success:      true,
		UpdatedRange: result.UpdatedRange,
		UpdatedRows:  ptr(result.UpdatedRows),
		UpdatedCells: ptr(result.UpdatedCells),
	}
}

func FindEnvelope(result FindResult) Envelope {
	found := result.Row != nil

	return Envelope{
		Success: true,
		Row:     result.Row,
		Found:   ptr(found),
	}
}

func TableAppendEnvelope(result TableAppendResult) Envelope {
	return Envelope{
		Success:   true,
		SheetID:   ptr(result.SheetID),
		RowsAdded: ptr(result.RowsAdded),
	}
}

func ErrorEnvelope(err error) Envelope {
	return Envelope{Success: false, Error: err.Error()}
}

func ptr[T any](v T) *T {
	return &v
}
