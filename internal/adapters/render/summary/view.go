package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/application"
	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

const defaultPreviewRows = 10

type RenderOptions struct {
	Operation string
	MaxRows   int
}

func renderView(envelope application.Envelope, opts RenderOptions, s styles) string {
	lines := []string{headline(envelope, opts, s)}

	for _, line := range detailLines(envelope, opts, s) {
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headline(envelope application.Envelope, opts RenderOptions, s styles) string {
	label := operationLabel(opts)
	if envelope.Success {
		return s.success.Render(fmt.Sprintf("✓ %s completed", label))
	}

	return s.failure.Render(fmt.Sprintf("✗ %s failed", label))
}

func operationLabel(opts RenderOptions) string {
	trimmed := strings.TrimSpace(opts.Operation)
	if trimmed == "" {
		return "operation"
	}

	return trimmed
}

func detailLines(envelope application.Envelope, opts RenderOptions, s styles) []string {
	lines := make([]string, 0, 8)

	if envelope.Rows != nil {
		lines = append(lines, detailLine(s, "rows", fmt.Sprintf("%d", *envelope.Rows)))
	}
	if envelope.Columns != nil {
		lines = append(lines, detailLine(s, "columns", fmt.Sprintf("%d", *envelope.Columns)))
	}
	if len(envelope.Headers) > 0 {
		lines = append(lines, detailLine(s, "headers", strings.Join(envelope.Headers, ", ")))
	}

	for _, line := range previewLines(envelope, opts, s) {
		lines = append(lines, line)
	}

	if envelope.UpdatedRange != "" {
		lines = append(lines, detailLine(s, "updated range", envelope.UpdatedRange))
	}
	if envelope.UpdatedRows != nil {
		lines = append(lines, detailLine(s, "updated rows", fmt.Sprintf("%d", *envelope.UpdatedRows)))
	}
	if envelope.UpdatedCells != nil {
		lines = append(lines, detailLine(s, "updated cells", fmt.Sprintf("%d", *envelope.UpdatedCells)))
	}

	if envelope.Found != nil {
		if *envelope.Found && envelope.Row != nil {
			lines = append(lines, s.value.Render(fmt.Sprintf("found at row %d", *envelope.Row)))
		} else {
			lines = append(lines, s.faint.Render("no matching row"))
		}
	}

	if envelope.SheetID != nil {
		lines = append(lines, detailLine(s, "sheet id", fmt.Sprintf("%d", *envelope.SheetID)))
	}
	if envelope.RowsAdded != nil {
		lines = append(lines, detailLine(s, "rows added", fmt.Sprintf("%d", *envelope.RowsAdded)))
	}

	if envelope.Error != "" {
		lines = append(lines, detailLine(s, "error", envelope.Error))
	}

	return lines
}

func detailLine(s styles, label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(label+":"),
		" ",
		s.value.Render(value),
	)
}

func previewLines(envelope application.Envelope, opts RenderOptions, s styles) []string {
	max := opts.MaxRows
	if max <= 0 {
		max = defaultPreviewRows
	}

	switch data := envelope.Data.(type) {
	case [][]string:
		return previewGrid(data, max, s)
	case []domain.Record:
		return previewRecords(data, envelope.Headers, max, s)
	default:
		return nil
	}
}

func previewGrid(rows [][]string, max int, s styles) []string {
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		if i >= max {
			lines = append(lines, s.faint.Render(fmt.Sprintf("(+%d more rows)", len(rows)-max)))
			break
		}

		lines = append(lines, s.value.Render(strings.Join(row, " | ")))
	}

	return lines
}

func previewRecords(records []domain.Record, headers []string, max int, s styles) []string {
	lines := make([]string, 0, len(records))
	for i, record := range records {
		if i >= max {
			lines = append(lines, s.faint.Render(fmt.Sprintf("(+%d more rows)", len(records)-max)))
			break
		}

		lines = append(lines, s.value.Render(recordLine(record, headers)))
	}

	return lines
}

func recordLine(record domain.Record, headers []string) string {
	keys := headers
	if len(keys) == 0 {
		keys = make([]string, 0, len(record))
		for key := range record {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, record[key]))
	}

	return strings.Join(parts, ", ")
}
