package ui

import (
	"slices"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-datagrid/internal/datagrid"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
)

const (
	// DefaultColWidth is the width of a column nobody has sized.
	DefaultColWidth = 10
	// MaxAutoColWidth caps the width AutoSizeColumns picks.
	MaxAutoColWidth = 40
)

type viewCell struct {
	value    string
	style    datagrid.CellStyle
	spanRows int
	spanCols int
}

// GridView is a terminal spreadsheet widget: a scrollable matrix of cells
// with column labels, a row number gutter, merged cells, a cursor and a
// selection. It implements datagrid.Widget.
type GridView struct {
	cells  [][]viewCell
	ncols  int
	labels []string
	sizes  []int

	selRows   []int
	selCols   []int
	selBlocks []grid.Box
	selCells  []grid.Cell
	anchorRow int
	anchorCol int

	curRow, curCol  int
	topRow, leftCol int
	viewRows        int
	viewWidth       int
	maxSpanRows     int

	originX, originY int
	gutter           int

	editor *CellEditor
	// OnCellEdited is called when an in-place edit is committed.
	OnCellEdited func(irow, icol int, value string)
}

var _ datagrid.Widget = (*GridView)(nil)

// NewGridView returns an empty grid.
func NewGridView() *GridView {
	return &GridView{
		anchorRow:   -1,
		anchorCol:   -1,
		viewRows:    24,
		viewWidth:   80,
		maxSpanRows: 1,
	}
}

func (v *GridView) blankCell() viewCell {
	return viewCell{style: datagrid.CellStyle{Background: tcell.ColorDefault, Foreground: tcell.ColorDefault}, spanRows: 1, spanCols: 1}
}

func (v *GridView) inside(irow, icol int) bool {
	return irow >= 0 && irow < len(v.cells) && icol >= 0 && icol < v.ncols
}

func (v *GridView) NumberRows() int { return len(v.cells) }

func (v *GridView) NumberCols() int { return v.ncols }

func (v *GridView) AppendRows(n int) {
	for i := 0; i < n; i++ {
		row := make([]viewCell, v.ncols)
		for c := range row {
			row[c] = v.blankCell()
		}
		v.cells = append(v.cells, row)
	}
}

// DeleteRows removes n rows at pos. The selection is dropped because its
// coordinates no longer mean anything.
func (v *GridView) DeleteRows(pos, n int) {
	if pos < 0 || pos >= len(v.cells) || n <= 0 {
		return
	}
	n = min(n, len(v.cells)-pos)
	v.cells = slices.Delete(v.cells, pos, pos+n)
	v.ClearSelection()
	v.clampCursor()
}

func (v *GridView) AppendCols(n int) {
	if n <= 0 {
		return
	}
	for i := range v.cells {
		for j := 0; j < n; j++ {
			v.cells[i] = append(v.cells[i], v.blankCell())
		}
	}
	for j := 0; j < n; j++ {
		v.labels = append(v.labels, "")
		v.sizes = append(v.sizes, DefaultColWidth)
	}
	v.ncols += n
}

func (v *GridView) DeleteCols(pos, n int) {
	if pos < 0 || pos >= v.ncols || n <= 0 {
		return
	}
	n = min(n, v.ncols-pos)
	for i := range v.cells {
		v.cells[i] = slices.Delete(v.cells[i], pos, pos+n)
	}
	v.labels = slices.Delete(v.labels, pos, pos+n)
	v.sizes = slices.Delete(v.sizes, pos, pos+n)
	v.ncols -= n
	v.ClearSelection()
	v.clampCursor()
}

func (v *GridView) ClearGrid() {
	for i := range v.cells {
		for j := range v.cells[i] {
			v.cells[i][j].value = ""
		}
	}
}

func (v *GridView) SetColLabel(icol int, label string) {
	if icol >= 0 && icol < v.ncols {
		v.labels[icol] = label
	}
}

func (v *GridView) ColLabel(icol int) string {
	if icol < 0 || icol >= v.ncols {
		return ""
	}
	return v.labels[icol]
}

func (v *GridView) CellValue(irow, icol int) string {
	if !v.inside(irow, icol) {
		return ""
	}
	return v.cells[irow][icol].value
}

func (v *GridView) SetCellValue(irow, icol int, val string) {
	if v.inside(irow, icol) {
		v.cells[irow][icol].value = val
	}
}

func (v *GridView) SetCellSpan(irow, icol, nrows, ncols int) {
	if !v.inside(irow, icol) {
		return
	}
	c := &v.cells[irow][icol]
	c.spanRows = max(nrows, 1)
	c.spanCols = max(ncols, 1)
	v.maxSpanRows = max(v.maxSpanRows, c.spanRows)
}

// CellSpan returns the merge anchored at (irow, icol); 1x1 when none.
func (v *GridView) CellSpan(irow, icol int) (nrows, ncols int) {
	if !v.inside(irow, icol) {
		return 1, 1
	}
	c := v.cells[irow][icol]
	return c.spanRows, c.spanCols
}

// coveredBy returns the anchor of the merge hiding (irow, icol), if any.
func (v *GridView) coveredBy(irow, icol int) (grid.Cell, bool) {
	for r := irow; r >= 0 && r > irow-v.maxSpanRows; r-- {
		for c := icol; c >= 0; c-- {
			if r == irow && c == icol {
				continue
			}
			cell := v.cells[r][c]
			if r+cell.spanRows > irow && c+cell.spanCols > icol {
				return grid.Cell{Row: r, Col: c}, true
			}
		}
	}
	return grid.Cell{}, false
}

func (v *GridView) CellStyle(irow, icol int) datagrid.CellStyle {
	if !v.inside(irow, icol) {
		return v.blankCell().style
	}
	return v.cells[irow][icol].style
}

func (v *GridView) SetCellStyle(irow, icol int, s datagrid.CellStyle) {
	if v.inside(irow, icol) {
		v.cells[irow][icol].style = s
	}
}

func (v *GridView) ColSize(icol int) int {
	if icol < 0 || icol >= v.ncols {
		return 0
	}
	return v.sizes[icol]
}

func (v *GridView) SetColSize(icol, width int) {
	if icol >= 0 && icol < v.ncols {
		v.sizes[icol] = max(width, 1)
	}
}

// AutoSizeColumns fits each column to its label and values. Merged cells
// do not count toward any column.
func (v *GridView) AutoSizeColumns() {
	for icol := 0; icol < v.ncols; icol++ {
		width := max(StringWidth(v.labels[icol]), 1)
		for irow := range v.cells {
			c := v.cells[irow][icol]
			if c.spanCols > 1 {
				continue
			}
			if _, hidden := v.coveredBy(irow, icol); hidden {
				continue
			}
			width = max(width, StringWidth(c.value))
		}
		v.sizes[icol] = min(width, MaxAutoColWidth)
	}
}

func (v *GridView) SelectedRows() []int { return slices.Clone(v.selRows) }

func (v *GridView) SelectedCols() []int { return slices.Clone(v.selCols) }

func (v *GridView) SelectedBlocks() []grid.Box { return slices.Clone(v.selBlocks) }

func (v *GridView) SelectedCells() []grid.Cell { return slices.Clone(v.selCells) }

func (v *GridView) ClearSelection() {
	v.selRows = nil
	v.selCols = nil
	v.selBlocks = nil
	v.selCells = nil
	v.anchorRow, v.anchorCol = -1, -1
}

func (v *GridView) SelectRow(irow int, add bool) {
	if !add {
		v.ClearSelection()
	}
	if irow >= 0 && irow < len(v.cells) && !slices.Contains(v.selRows, irow) {
		v.selRows = append(v.selRows, irow)
		slices.Sort(v.selRows)
	}
}

func (v *GridView) SelectCol(icol int, add bool) {
	if !add {
		v.ClearSelection()
	}
	if icol >= 0 && icol < v.ncols && !slices.Contains(v.selCols, icol) {
		v.selCols = append(v.selCols, icol)
		slices.Sort(v.selCols)
	}
}

func (v *GridView) SelectBlock(b grid.Box, add bool) {
	if !add {
		v.ClearSelection()
	}
	if b.IsEmpty() || slices.Contains(v.selBlocks, b) {
		return
	}
	v.selBlocks = append(v.selBlocks, b)
}

func (v *GridView) SelectCell(irow, icol int, add bool) {
	if !add {
		v.ClearSelection()
	}
	c := grid.Cell{Row: irow, Col: icol}
	if v.inside(irow, icol) && !slices.Contains(v.selCells, c) {
		v.selCells = append(v.selCells, c)
	}
}

// IsSelected reports whether (irow, icol) is in any part of the selection.
func (v *GridView) IsSelected(irow, icol int) bool {
	if slices.Contains(v.selRows, irow) || slices.Contains(v.selCols, icol) {
		return true
	}
	if slices.Contains(v.selCells, grid.Cell{Row: irow, Col: icol}) {
		return true
	}
	for _, b := range v.selBlocks {
		if b.Contains(irow, icol) {
			return true
		}
	}
	return false
}

func (v *GridView) CursorRow() int { return v.curRow }

func (v *GridView) CursorCol() int { return v.curCol }

func (v *GridView) SetCursor(irow, icol int) {
	v.curRow, v.curCol = irow, icol
	v.clampCursor()
}

func (v *GridView) clampCursor() {
	v.curRow = max(0, min(v.curRow, len(v.cells)-1))
	v.curCol = max(0, min(v.curCol, v.ncols-1))
}

// SetViewport sets how many rows and terminal columns the cell area has.
func (v *GridView) SetViewport(rows, width int) {
	v.viewRows = max(rows, 1)
	v.viewWidth = max(width, 1)
}

// ScrollOffset returns the first visible row and column.
func (v *GridView) ScrollOffset() (row, col int) { return v.topRow, v.leftCol }

func (v *GridView) colVisible(icol int) bool {
	if icol < v.leftCol || icol >= v.ncols {
		return false
	}
	used := 0
	for c := v.leftCol; c <= icol; c++ {
		used += v.sizes[c] + 1
	}
	return used <= v.viewWidth || icol == v.leftCol
}

func (v *GridView) IsVisible(irow, icol int) bool {
	return irow >= v.topRow && irow < v.topRow+v.viewRows && irow < len(v.cells) && v.colVisible(icol)
}

func (v *GridView) MakeCellVisible(irow, icol int) {
	if irow < v.topRow {
		v.topRow = max(irow, 0)
	} else if irow >= v.topRow+v.viewRows {
		v.topRow = irow - v.viewRows + 1
	}
	if icol < 0 || icol >= v.ncols {
		return
	}
	if icol < v.leftCol {
		v.leftCol = icol
	}
	for !v.colVisible(icol) && v.leftCol < icol {
		v.leftCol++
	}
}

// MoveCursor moves the cursor by (drow, dcol) and scrolls to it. With
// extend the block from the selection anchor to the cursor is selected;
// otherwise the selection is dropped.
func (v *GridView) MoveCursor(drow, dcol int, extend bool) {
	if extend && v.anchorRow < 0 {
		v.anchorRow, v.anchorCol = v.curRow, v.curCol
	}
	v.SetCursor(v.curRow+drow, v.curCol+dcol)
	v.MakeCellVisible(v.curRow, v.curCol)

	if !extend {
		v.ClearSelection()
		return
	}
	anchorRow, anchorCol := v.anchorRow, v.anchorCol
	v.SelectBlock(grid.Box{
		Top:    min(anchorRow, v.curRow),
		Left:   min(anchorCol, v.curCol),
		Bottom: max(anchorRow, v.curRow),
		Right:  max(anchorCol, v.curCol),
	}, false)
	v.anchorRow, v.anchorCol = anchorRow, anchorCol
}

// HandleKey moves the cursor for navigation keys. Shift extends the
// selection. It reports whether ev was used.
func (v *GridView) HandleKey(ev *tcell.EventKey) bool {
	if v.editor != nil {
		v.handleEditKey(ev)
		return true
	}

	extend := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyUp:
		v.MoveCursor(-1, 0, extend)
	case tcell.KeyDown:
		v.MoveCursor(1, 0, extend)
	case tcell.KeyLeft:
		v.MoveCursor(0, -1, extend)
	case tcell.KeyRight:
		v.MoveCursor(0, 1, extend)
	case tcell.KeyPgUp:
		v.MoveCursor(-v.viewRows, 0, extend)
	case tcell.KeyPgDn:
		v.MoveCursor(v.viewRows, 0, extend)
	case tcell.KeyHome:
		v.MoveCursor(0, -v.curCol, extend)
	case tcell.KeyEnd:
		v.MoveCursor(0, v.ncols-1-v.curCol, extend)
	default:
		return false
	}
	return true
}

// BeginEdit opens the in-place editor on the cursor cell.
func (v *GridView) BeginEdit() {
	if !v.inside(v.curRow, v.curCol) {
		return
	}
	v.editor = NewCellEditor(v.curRow, v.curCol, v.CellValue(v.curRow, v.curCol))
}

// BeginEditWith opens the editor with initial replacing the cell value,
// as when the user starts typing over a cell.
func (v *GridView) BeginEditWith(initial string) {
	v.BeginEdit()
	if v.editor != nil {
		v.editor.SetText(initial)
	}
}

// IsEditing reports whether an in-place edit is open.
func (v *GridView) IsEditing() bool { return v.editor != nil }

// CancelEdit closes the editor and discards its text.
func (v *GridView) CancelEdit() { v.editor = nil }

func (v *GridView) handleEditKey(ev *tcell.EventKey) {
	switch v.editor.HandleKey(ev) {
	case EditCommit:
		v.SaveEditControlValue()
	case EditCancel:
		v.CancelEdit()
	}
}

// SaveEditControlValue commits the open edit, if any.
func (v *GridView) SaveEditControlValue() {
	e := v.editor
	if e == nil {
		return
	}
	v.editor = nil
	if !e.Changed() {
		return
	}
	irow, icol := e.Cell()
	v.SetCellValue(irow, icol, e.Text())
	if v.OnCellEdited != nil {
		v.OnCellEdited(irow, icol, e.Text())
	}
}

// CellAt maps a screen position from the last Render to a cell. label is
// true on the column label line, where irow is -1.
func (v *GridView) CellAt(sx, sy int) (irow, icol int, label, ok bool) {
	if sx < v.originX+v.gutter || sy < v.originY {
		return -1, -1, false, false
	}
	x := v.originX + v.gutter
	icol = -1
	for c := v.leftCol; c < v.ncols; c++ {
		if sx < x+v.sizes[c]+1 {
			icol = c
			break
		}
		x += v.sizes[c] + 1
	}
	if icol < 0 {
		return -1, -1, false, false
	}
	if sy == v.originY {
		return -1, icol, true, true
	}
	irow = v.topRow + sy - v.originY - 1
	if irow >= len(v.cells) {
		return -1, -1, false, false
	}
	return irow, icol, false, true
}

// Render draws the grid into the w x h rectangle at (x, y): one label line
// then the visible rows.
func (v *GridView) Render(screen *Screen, x, y, w, h int) {
	v.originX, v.originY = x, y
	v.gutter = len(strconv.Itoa(len(v.cells))) + 2
	v.SetViewport(h-1, w-v.gutter)

	labelStyle := screen.GridLabelStyle()
	numberStyle := screen.GridRowNumberStyle()
	sepStyle := screen.GridSeparatorStyle()

	screen.FillRow(x, y, w, labelStyle)
	col := x + v.gutter
	for c := v.leftCol; c < v.ncols && col < x+w; c++ {
		screen.DrawStringLimited(col, y, FitCell(v.labels[c], v.sizes[c]), x+w-col, labelStyle)
		col += v.sizes[c]
		screen.SetCell(col, y, '│', sepStyle)
		col++
	}

	for line := 1; line < h; line++ {
		irow := v.topRow + line - 1
		sy := y + line
		screen.FillRow(x, sy, w, DefaultStyle())
		if irow >= len(v.cells) {
			continue
		}
		num := strconv.Itoa(irow + 1)
		screen.DrawString(x+v.gutter-1-len(num), sy, num, numberStyle)
		v.renderRow(screen, irow, x+v.gutter, sy, x+w, sepStyle)
	}
}

func (v *GridView) renderRow(screen *Screen, irow, sx, sy, right int, sepStyle tcell.Style) {
	col := sx
	for c := v.leftCol; c < v.ncols && col < right; c++ {
		width := v.sizes[c]
		text := v.cells[irow][c].value
		styleCell := grid.Cell{Row: irow, Col: c}

		if anchor, hidden := v.coveredBy(irow, c); hidden {
			if anchor.Col >= v.leftCol {
				continue
			}
			// The merge starts off screen; draw its tail blank.
			text = ""
			styleCell = anchor
		} else if span := v.cells[irow][c].spanCols; span > 1 {
			for k := c + 1; k < min(c+span, v.ncols); k++ {
				width += v.sizes[k] + 1
			}
		}

		cs := v.cells[styleCell.Row][styleCell.Col].style
		selected := v.IsSelected(irow, c)
		cursor := irow == v.curRow && c == v.curCol
		st := screen.GridCellStyle(cs.Background, cs.Foreground, cs.Bold, cs.Underline, selected, cursor)

		avail := min(width, right-col)
		if v.editor != nil {
			if er, ec := v.editor.Cell(); er == irow && ec == c {
				v.editor.Render(screen, col, sy, avail)
				col += width
				screen.SetCell(col, sy, '│', sepStyle)
				col++
				continue
			}
		}
		screen.DrawString(col, sy, FitCell(text, avail), st)
		col += width
		screen.SetCell(col, sy, '│', sepStyle)
		col++
	}
}
