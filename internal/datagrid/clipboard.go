package datagrid

import (
	"log"

	"github.com/pstuifzand/tui-datagrid/internal/export"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
)

// CopyCells copies the inclusive rectangle from the data source into the
// grid's clipboard, and to the clipboard sink when one is set.
func (g *DataGrid) CopyCells(top, left, bottom, right int) {
	if top < 0 || left < 0 || bottom < top || right < left {
		return
	}
	clip := make([][]string, 0, bottom-top+1)
	for irow := top; irow <= bottom; irow++ {
		vals := make([]string, 0, right-left+1)
		for icol := left; icol <= right; icol++ {
			vals = append(vals, grid.CellValue(g.ds, irow, icol))
		}
		clip = append(clip, vals)
	}
	g.clipboard = clip

	if g.sink != nil {
		if err := g.sink.WriteText(export.ToTSV(clip)); err != nil {
			log.Printf("Failed to write system clipboard: %v", err)
		}
	}
}

// Clipboard returns a copy of the clipboard contents.
func (g *DataGrid) Clipboard() [][]string {
	out := make([][]string, len(g.clipboard))
	for i, row := range g.clipboard {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// SetClipboard replaces the clipboard, e.g. with text pasted from another
// program.
func (g *DataGrid) SetClipboard(cells [][]string) {
	g.clipboard = cells
}

// HasClipboard reports whether there is anything to paste.
func (g *DataGrid) HasClipboard() bool {
	return len(g.clipboard) > 0 && len(g.clipboard[0]) > 0
}

// PasteCells writes the clipboard into the data source with its top-left
// corner at (top, left). Columns past the schema are added when the source
// allows it and dropped otherwise. A paste with no column left to write
// changes nothing; otherwise missing rows are added.
func (g *DataGrid) PasteCells(top, left int) {
	if !g.HasClipboard() || top < 0 || left < 0 {
		return
	}
	width := 0
	for _, row := range g.clipboard {
		width = max(width, len(row))
	}
	bottom := top + len(g.clipboard) - 1
	right := left + width - 1

	growCols := false
	if right >= g.ds.Schema().Len() {
		if grid.CanAddColumns(g.ds) {
			growCols = true
		} else {
			right = g.ds.Schema().Len() - 1
		}
	}
	if right < left {
		return
	}

	if n := bottom - g.ds.RowCount() + 1; n > 0 {
		grid.InsertRows(g.ds, g.ds.RowCount(), n)
	}
	if growCols {
		grid.ExpandToInclude(g.ds, bottom, right)
	}

	for i, vals := range g.clipboard {
		row := g.ds.Row(top + i)
		for j, val := range vals {
			if left+j > right {
				break
			}
			row.SetCell(left+j, val)
		}
	}
	g.Refresh(BoxRange(grid.Box{Top: top, Left: left, Bottom: bottom, Right: right}))
}

// EraseSelection blanks the selected cells that hold data.
func (g *DataGrid) EraseSelection() {
	g.w.SaveEditControlValue()
	box := grid.LimitBoxToActuals(g.ds, g.LocateSelection())
	if box.IsEmpty() {
		return
	}
	for irow := box.Top; irow <= box.Bottom; irow++ {
		row := g.ds.Row(irow)
		for icol := box.Left; icol <= box.Right; icol++ {
			row.SetCell(icol, "")
		}
	}
	g.Refresh(BoxRange(box))
}

// CopySelection copies the selection, real or implied.
func (g *DataGrid) CopySelection() {
	g.w.SaveEditControlValue()
	b := g.LocateSelection()
	g.CopyCells(b.Top, b.Left, b.Bottom, b.Right)
}

// PasteAtSelection pastes with the clipboard anchored at the selection.
func (g *DataGrid) PasteAtSelection() {
	g.w.SaveEditControlValue()
	b := g.LocateSelection()
	g.PasteCells(b.Top, b.Left)
}
