package datagrid

import "github.com/pstuifzand/tui-datagrid/internal/grid"

// selectionBoxes returns every selected area as a box: whole rows and
// columns span the widget, single cells are 1x1.
func (g *DataGrid) selectionBoxes() []grid.Box {
	lastRow, lastCol := g.w.NumberRows()-1, g.w.NumberCols()-1

	boxes := append([]grid.Box(nil), g.w.SelectedBlocks()...)
	for _, r := range g.w.SelectedRows() {
		boxes = append(boxes, grid.Box{Top: r, Left: 0, Bottom: r, Right: lastCol})
	}
	for _, c := range g.w.SelectedCols() {
		boxes = append(boxes, grid.Box{Top: 0, Left: c, Bottom: lastRow, Right: c})
	}
	for _, c := range g.w.SelectedCells() {
		boxes = append(boxes, grid.Box{Top: c.Row, Left: c.Col, Bottom: c.Row, Right: c.Col})
	}
	return boxes
}

// HasSelection reports whether anything is selected.
func (g *DataGrid) HasSelection() bool {
	return len(g.selectionBoxes()) > 0
}

// SelectionBoundingBox returns the box covering every selection, or
// grid.NoBox when nothing is selected.
func (g *DataGrid) SelectionBoundingBox() grid.Box {
	box := grid.NoBox
	for _, b := range g.selectionBoxes() {
		box = box.Union(b)
	}
	return box
}

// LocateSelection returns the selection, real or implied: the bounding box
// of the selection if there is one, else the cursor cell.
func (g *DataGrid) LocateSelection() grid.Box {
	if box := g.SelectionBoundingBox(); !box.IsEmpty() {
		return box
	}
	r, c := g.w.CursorRow(), g.w.CursorCol()
	return grid.Box{Top: r, Left: c, Bottom: r, Right: c}
}

// SelectRows selects rows top through bottom, replacing the selection.
func (g *DataGrid) SelectRows(top, bottom int) {
	g.w.SelectRow(top, false)
	for i := top + 1; i <= bottom; i++ {
		g.w.SelectRow(i, true)
	}
}

// SelectCols selects columns left through right, replacing the selection.
func (g *DataGrid) SelectCols(left, right int) {
	g.w.SelectCol(left, false)
	for i := left + 1; i <= right; i++ {
		g.w.SelectCol(i, true)
	}
}

// ExtendRowSelection widens the selection to whole rows and returns them,
// or -1, -1 when nothing is selected.
func (g *DataGrid) ExtendRowSelection() (top, bottom int) {
	box := g.SelectionBoundingBox()
	if box.IsEmpty() {
		return -1, -1
	}
	g.SelectRows(box.Top, box.Bottom)
	return box.Top, box.Bottom
}

// ExtendColSelection widens the selection to whole columns and returns
// them, or -1, -1 when nothing is selected.
func (g *DataGrid) ExtendColSelection() (left, right int) {
	box := g.SelectionBoundingBox()
	if box.IsEmpty() {
		return -1, -1
	}
	g.SelectCols(box.Left, box.Right)
	return box.Left, box.Right
}

// SelectedRowRange returns the first and last row touched by the
// selection.
func (g *DataGrid) SelectedRowRange() (first, last int, ok bool) {
	box := g.SelectionBoundingBox()
	if box.IsEmpty() {
		return 0, 0, false
	}
	return box.Top, box.Bottom, true
}
