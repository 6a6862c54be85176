package diff

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BuildDiffLines converts a DiffResult into formatted display lines
// This is suitable for both CLI and TUI output
func BuildDiffLines(result *DiffResult, verbose bool) []DiffLine {
	var lines []DiffLine

	if len(result.AddedColumns) > 0 || len(result.RemovedColumns) > 0 {
		lines = append(lines, DiffLine{Type: DiffTypeHeader, Content: "Columns:"})
		for _, c := range result.AddedColumns {
			lines = append(lines, DiffLine{Type: DiffTypeNewItem, Content: "+ " + c, Indent: 1})
		}
		for _, c := range result.RemovedColumns {
			lines = append(lines, DiffLine{Type: DiffTypeDeletedItem, Content: "- " + c, Indent: 1})
		}
		lines = append(lines, DiffLine{Type: DiffTypeBlank})
	}

	if len(result.NewRows) > 0 {
		lines = append(lines, DiffLine{Type: DiffTypeNewSection, Content: "New Rows:"})
		for _, r := range result.NewRows {
			lines = append(lines, formatRow(DiffTypeNewItem, r))
		}
		lines = append(lines, DiffLine{Type: DiffTypeBlank})
	}

	if len(result.DeletedRows) > 0 {
		lines = append(lines, DiffLine{Type: DiffTypeDeletedSection, Content: "Deleted Rows:"})
		for _, r := range result.DeletedRows {
			lines = append(lines, formatRow(DiffTypeDeletedItem, r))
		}
		lines = append(lines, DiffLine{Type: DiffTypeBlank})
	}

	if len(result.ModifiedRows) > 0 {
		lines = append(lines, DiffLine{Type: DiffTypeModifiedSection, Content: "Modified Rows:"})
		for _, change := range result.ModifiedRows {
			lines = append(lines, formatModifiedRow(change, verbose)...)
		}
		lines = append(lines, DiffLine{Type: DiffTypeBlank})
	}

	if !result.Empty() {
		lines = append(lines, DiffLine{Type: DiffTypeSummary, Content: "=== Summary ==="})
		lines = append(lines, DiffLine{
			Type: DiffTypeSummary,
			Content: fmt.Sprintf("  %d modified, %d added, %d deleted rows; %d added, %d removed columns",
				len(result.ModifiedRows), len(result.NewRows), len(result.DeletedRows),
				len(result.AddedColumns), len(result.RemovedColumns)),
		})
	}
	return lines
}

// FormatText renders lines as plain text, two spaces per indent level.
func FormatText(lines []DiffLine) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(strings.Repeat("  ", l.Indent))
		sb.WriteString(l.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatRow(t DiffLineType, r RowData) DiffLine {
	return DiffLine{
		Type:    t,
		Content: fmt.Sprintf("%d: %s", r.Index+1, truncateText(rowText(r), 60)),
		Indent:  1,
	}
}

func formatModifiedRow(change RowChange, verbose bool) []DiffLine {
	lines := []DiffLine{{
		Type:    DiffTypeModifiedItem,
		Content: fmt.Sprintf("%d: %s", change.New.Index+1, truncateText(rowText(change.New), 60)),
		Indent:  1,
	}}
	if change.Old.Index != change.New.Index {
		lines = append(lines, DiffLine{
			Type:    DiffTypeItemDetail,
			Content: fmt.Sprintf("MOVED: from row %d", change.Old.Index+1),
			Indent:  2,
		})
	}
	if change.FlagsChanged {
		lines = append(lines, DiffLine{
			Type:    DiffTypeItemDetail,
			Content: fmt.Sprintf("KIND: %s -> %s", rowKind(change.Old), rowKind(change.New)),
			Indent:  2,
		})
	}
	for _, c := range change.Cells {
		lines = append(lines, DiffLine{
			Type:    DiffTypeItemDetail,
			Content: fmt.Sprintf("%s: %q -> %q", c.Column, truncateText(c.Old, 30), truncateText(c.New, 30)),
			Indent:  2,
		})
	}
	if verbose {
		lines = append(lines, DiffLine{
			Type:    DiffTypeItemDetail,
			Content: "WAS: " + rowText(change.Old),
			Indent:  2,
		})
	}
	return lines
}

func rowText(r RowData) string {
	var parts []string
	for _, c := range r.Cells {
		if strings.TrimSpace(c) != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " | ")
}

func rowKind(r RowData) string {
	switch {
	case r.Text:
		return "text"
	case r.Link:
		return "link"
	}
	return "data"
}

// truncateText limits text width for display
func truncateText(text string, maxWidth int) string {
	lines := strings.Split(text, "\n")
	text = lines[0]
	if len(lines) > 1 {
		text += " ..."
	}
	return runewidth.Truncate(text, maxWidth, "...")
}
