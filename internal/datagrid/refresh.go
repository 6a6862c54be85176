package datagrid

import (
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// RefreshOptions selects what a refresh reloads. A bound of -1 is unset.
//
// With all four bounds set only that rectangle is reloaded and recolored.
// With only the row bounds set those rows are reloaded. With only the
// column bounds set those columns are reloaded for every row. Otherwise the
// widget is rebuilt from scratch.
type RefreshOptions struct {
	RetainSelection bool
	RetainCursor    bool
	StartRow        int
	EndRow          int
	StartCol        int
	EndCol          int
}

// FullRefresh rebuilds the whole widget, keeping selection and cursor.
func FullRefresh() RefreshOptions {
	return RefreshOptions{RetainSelection: true, RetainCursor: true, StartRow: -1, EndRow: -1, StartCol: -1, EndCol: -1}
}

// RowRange reloads rows start through end.
func RowRange(start, end int) RefreshOptions {
	o := FullRefresh()
	o.StartRow, o.EndRow = start, end
	return o
}

// ColRange reloads columns start through end.
func ColRange(start, end int) RefreshOptions {
	o := FullRefresh()
	o.StartCol, o.EndCol = start, end
	return o
}

// BoxRange reloads the cells in b.
func BoxRange(b grid.Box) RefreshOptions {
	o := FullRefresh()
	o.StartRow, o.EndRow, o.StartCol, o.EndCol = b.Top, b.Bottom, b.Left, b.Right
	return o
}

func (o RefreshOptions) hasRows() bool {
	return o.StartRow >= 0 && o.EndRow >= 0 && o.StartRow <= o.EndRow
}

func (o RefreshOptions) hasCols() bool {
	return o.StartCol >= 0 && o.EndCol >= 0 && o.StartCol <= o.EndCol
}

func (o RefreshOptions) noRows() bool { return o.StartRow == -1 && o.EndRow == -1 }

func (o RefreshOptions) noCols() bool { return o.StartCol == -1 && o.EndCol == -1 }

// Refresh pushes the data source into the widget.
func (g *DataGrid) Refresh(o RefreshOptions) {
	switch {
	case o.hasRows() && o.hasCols():
		g.growWidget()
		for irow := o.StartRow; irow <= o.EndRow; irow++ {
			for icol := o.StartCol; icol <= o.EndCol; icol++ {
				g.ReloadCell(irow, icol)
			}
		}
		g.ColorCellsByValue(o.StartRow, o.EndRow, o.StartCol, o.EndCol)
		g.SetColHeaders(g.ds.Schema())
		return

	case o.hasRows() && o.noCols():
		g.growWidget()
		for irow := o.StartRow; irow <= o.EndRow; irow++ {
			g.ReloadRow(irow)
		}
		g.ColorCellsByValue(o.StartRow, o.EndRow, -1, -1)
		return

	case o.hasCols() && o.noRows():
		g.growWidget()
		for irow := 0; irow < g.ds.RowCount(); irow++ {
			for icol := o.StartCol; icol <= o.EndCol; icol++ {
				g.ReloadCell(irow, icol)
			}
		}
		g.ColorCellsByValue(-1, -1, o.StartCol, o.EndCol)
		g.SetColHeaders(g.ds.Schema())
		return
	}

	g.fullRefresh(o)
}

func (g *DataGrid) fullRefresh(o RefreshOptions) {
	sel := CaptureSelection(g.w)
	cursorRow, cursorCol := g.w.CursorRow(), g.w.CursorCol()

	var visible []int
	if g.w.NumberCols() > 0 {
		for i := 0; i < g.w.NumberRows(); i++ {
			if g.w.IsVisible(i, 0) {
				visible = append(visible, i)
			}
		}
	}

	g.w.ClearGrid()
	if n := g.w.NumberRows(); n > 0 {
		g.w.DeleteRows(0, n)
	}
	g.SetColHeaders(g.ds.Schema())
	g.w.AppendRows(g.ds.RowCount() + g.spareRows)
	for irow := 0; irow < g.ds.RowCount(); irow++ {
		g.ReloadRow(irow)
	}
	g.ColorCellsByValue(-1, -1, -1, -1)
	g.AutoSizeColumns()

	if o.RetainCursor {
		g.w.SetCursor(cursorRow, cursorCol)
	}
	if o.RetainSelection {
		sel.Restore(g.w)
		if len(visible) > 0 {
			g.w.MakeCellVisible(visible[0], 0)
			g.w.MakeCellVisible(visible[len(visible)-1], 0)
		}
	}
}

// growWidget makes room in the widget for every row and column of the data
// source. Ranged refreshes otherwise assume the dimensions are unchanged.
func (g *DataGrid) growWidget() {
	if n := g.ds.RowCount(); n > g.w.NumberRows() {
		g.w.AppendRows(n + g.spareRows - g.w.NumberRows())
	}
	if n := g.ds.Schema().Len(); n > g.w.NumberCols() {
		g.w.AppendCols(n - g.w.NumberCols())
	}
}

// ReloadRow fixes the merging of row irow and pushes its values.
func (g *DataGrid) ReloadRow(irow int) {
	if irow < 0 || irow >= g.ds.RowCount() || irow >= g.w.NumberRows() {
		return
	}
	row := g.ds.Row(irow)
	ncols := g.w.NumberCols()

	for icol := 0; icol < ncols; icol++ {
		g.w.SetCellSpan(irow, icol, 1, 1)
	}
	switch {
	case grid.IsTextRow(row):
		g.w.SetCellSpan(irow, 0, 1, ncols)
	case grid.IsLinkRow(row):
		at, err := g.ds.Schema().IndexOf(grid.DisplayNameColumn)
		if err != nil {
			g.w.SetCellSpan(irow, 0, 1, ncols)
			break
		}
		if at > 0 {
			g.w.SetCellSpan(irow, 0, 1, at)
		}
		if at < ncols-1 {
			g.w.SetCellSpan(irow, at, 1, ncols-at)
		}
	}

	for icol := 0; icol < g.ds.Schema().Len(); icol++ {
		g.w.SetCellValue(irow, icol, row.Cell(icol))
	}
}

// ReloadCell pushes the value at (irow, icol).
func (g *DataGrid) ReloadCell(irow, icol int) {
	g.w.SetCellValue(irow, icol, grid.CellValue(g.ds, irow, icol))
}

// SetColHeaders sizes the widget to cols and labels each column with its
// display name.
func (g *DataGrid) SetColHeaders(cols *schema.List) {
	g.SetNumCols(cols.Len())
	for i, name := range cols.DisplayNames() {
		g.w.SetColLabel(i, name)
	}
}

// AutoSizeColumns sizes columns to their content, but never narrower than
// the width their definition asks for.
func (g *DataGrid) AutoSizeColumns() {
	g.w.AutoSizeColumns()
	for i, def := range g.ds.Schema().All() {
		if i >= g.w.NumberCols() {
			break
		}
		if g.w.ColSize(i) < def.Width {
			g.w.SetColSize(i, def.Width)
		}
	}
}

// MakeRowsVisible scrolls so that the first and last of rows are on screen.
func (g *DataGrid) MakeRowsVisible(rows []int) {
	if len(rows) == 0 {
		return
	}
	lo, hi := rows[0], rows[0]
	for _, r := range rows[1:] {
		lo, hi = min(lo, r), max(hi, r)
	}
	if !g.w.IsVisible(lo, 0) {
		g.w.MakeCellVisible(lo, 0)
	}
	if !g.w.IsVisible(hi, 0) {
		g.w.MakeCellVisible(hi, 0)
	}
}
