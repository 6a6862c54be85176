package datagrid

import (
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// ColorCell derives the style of widget cell (irow, icol) from the data
// source and the cell's current text. It depends only on that state, so
// coloring the same cell twice gives the same result.
func (g *DataGrid) ColorCell(irow, icol int) {
	style := CellStyle{Background: g.palette.White, Foreground: g.palette.Black}
	cols := g.ds.Schema()

	def, err := cols.ByPosition(icol)
	if err != nil || irow >= g.ds.RowCount() {
		// Filler cells past the data.
		g.w.SetCellSpan(irow, icol, 1, 1)
		if err == nil && def.Editable != schema.EditableYes {
			style.Background = g.palette.LightGray
		}
		g.w.SetCellStyle(irow, icol, style)
		return
	}

	row := g.ds.Row(irow)
	textRow := grid.IsTextRow(row)
	switch {
	case textRow:
		if c, ok := grid.SpecialTextColor(g.ds); ok {
			style.Background = c
		} else {
			style.Bold = true
		}
	case grid.IsLinkRow(row):
		if at, err := cols.IndexOf(grid.DisplayNameColumn); err != nil || icol < at {
			style.Underline = true
		}
	case def.Editable == schema.EditableNo:
		style.Background = g.palette.LightGray
	case def.Editable == schema.EditableMaybe && !g.ds.Overlay().Allowed(irow, icol):
		style.Background = g.palette.LightGray
	default:
		if def.Type != schema.TypeString && !row.IsEmptyRow() {
			if !g.validators.Valid(def.Type, g.w.CellValue(irow, icol)) {
				style.Background = g.palette.Pink
			}
		}
	}

	if def.Type == schema.TypeURL && !textRow {
		if g.w.CellValue(irow, icol) != "" {
			style.Foreground = g.palette.Blue
			style.Underline = true
		} else {
			style.Underline = false
		}
	}

	g.w.SetCellStyle(irow, icol, style)
	g.runOverride(irow, icol)
}

func (g *DataGrid) runOverride(irow, icol int) {
	if g.colorOverride != nil {
		g.colorOverride(icol, irow)
	}
}

// ColorCellsByValue colors the inclusive rectangle of widget cells. A
// bound of -1 extends to the edge of the widget.
func (g *DataGrid) ColorCellsByValue(startRow, endRow, startCol, endCol int) {
	if startRow == -1 {
		startRow = 0
	}
	if endRow == -1 {
		endRow = g.w.NumberRows() - 1
	}
	if startCol == -1 {
		startCol = 0
	}
	if endCol == -1 {
		endCol = g.w.NumberCols() - 1
	}

	for irow := startRow; irow <= endRow; irow++ {
		for icol := startCol; icol <= endCol; icol++ {
			g.ColorCell(irow, icol)
		}
	}
}
