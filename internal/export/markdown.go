package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
)

// ExportToMarkdown writes ds to filePath as a pipe table.
func ExportToMarkdown(ds grid.DataSource, filePath string) error {
	var sb strings.Builder
	WriteMarkdown(&sb, ds)

	if err := os.WriteFile(filePath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}

	return nil
}

// WriteMarkdown renders ds as a pipe table padded to the widest cell of
// each column. Text rows are collapsed into their first cell.
func WriteMarkdown(w io.Writer, ds grid.DataSource) {
	header := ds.Schema().DisplayNames()
	ncols := len(header)
	if ncols == 0 {
		return
	}

	table := make([][]string, 0, ds.RowCount())
	for _, r := range ds.Rows() {
		cells := make([]string, ncols)
		if grid.IsTextRow(r) {
			cells[0] = escapeCell(joinNonBlank(r.Cells()))
		} else {
			for i := range cells {
				cells[i] = escapeCell(r.Cell(i))
			}
		}
		table = append(table, cells)
	}

	widths := make([]int, ncols)
	for i, h := range header {
		header[i] = escapeCell(h)
		widths[i] = max(3, runewidth.StringWidth(header[i]))
	}
	for _, cells := range table {
		for i, c := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	writeRow(w, header, widths)
	rule := make([]string, ncols)
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	writeRow(w, rule, widths)
	for _, cells := range table {
		writeRow(w, cells, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	var sb strings.Builder
	sb.WriteString("|")
	for i, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(c, widths[i]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	io.WriteString(w, sb.String())
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func joinNonBlank(cells []string) string {
	var parts []string
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			parts = append(parts, strings.TrimSpace(c))
		}
	}
	return strings.Join(parts, " ")
}
