package datagrid

import (
	"log"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// MoveRows moves count rows starting at oldRow so they begin at newRow.
// The caller keeps newRow in range.
func (g *DataGrid) MoveRows(oldRow, count, newRow int) {
	log.Printf("Moving %d rows from %d to %d", count, oldRow, newRow)
	grid.MoveRows(g.ds, oldRow, count, newRow)
}

// MoveCols moves count columns starting at oldCol so they begin at newCol.
func (g *DataGrid) MoveCols(oldCol, count, newCol int) {
	log.Printf("Moving %d columns from %d to %d", count, oldCol, newCol)
	grid.MoveColumns(g.ds, oldCol, count, newCol)
}

// InsertEmptyRows inserts n blank rows before irow and refreshes.
func (g *DataGrid) InsertEmptyRows(irow, n int) {
	grid.InsertRows(g.ds, irow, n)
	g.Refresh(FullRefresh())
}

// AppendRows grows the widget by n rows without touching the data.
func (g *DataGrid) AppendRows(n int) {
	if n > 0 {
		g.w.AppendRows(n)
	}
}

// DeleteRows removes up to n rows starting at irow, clamped to the data,
// and refreshes. It returns the number removed.
func (g *DataGrid) DeleteRows(irow, n int) int {
	removed := grid.DeleteRows(g.ds, irow, n)
	if removed > 0 {
		log.Printf("Deleted %d rows at %d", removed, irow)
		g.Refresh(FullRefresh())
	}
	return removed
}

// DeleteSelectedRows deletes the rows under the selection, or the last
// clicked row when nothing is selected.
func (g *DataGrid) DeleteSelectedRows() {
	g.w.SaveEditControlValue()
	top, bottom := g.clickedRow, g.clickedRow
	if box := g.SelectionBoundingBox(); !box.IsEmpty() {
		top, bottom = box.Top, box.Bottom
	}
	if top < 0 {
		return
	}
	removed := grid.DeleteRows(g.ds, top, bottom-top+1)
	log.Printf("Deleted %d selected rows at %d", removed, top)
	g.w.ClearSelection()
	g.Refresh(FullRefresh())
}

// DeleteSelectedColumns deletes the columns under the selection, or the
// last clicked column when nothing is selected.
func (g *DataGrid) DeleteSelectedColumns() {
	g.w.SaveEditControlValue()
	left, right := g.clickedCol, g.clickedCol
	if box := g.SelectionBoundingBox(); !box.IsEmpty() {
		left, right = box.Left, box.Right
	}
	right = min(right, g.ds.Schema().Len()-1)
	if left < 0 || right < left {
		return
	}
	grid.DeleteColumns(g.ds, left, right+1)
	log.Printf("Deleted columns %d-%d", left, right)
	g.w.ClearSelection()
	g.Refresh(FullRefresh())
}

// DeleteColumn deletes column icol from the schema and every row.
func (g *DataGrid) DeleteColumn(icol int) {
	g.w.SaveEditControlValue()
	if icol < 0 || icol >= g.ds.Schema().Len() {
		return
	}
	grid.DeleteColumn(g.ds, icol)
	g.Refresh(FullRefresh())
}

// InsertColumnMaybeQuery inserts a column named name right after icol.
// Without a name the user is asked for one; a blank answer does nothing.
// It reports whether a column was inserted.
func (g *DataGrid) InsertColumnMaybeQuery(icol int, name string) bool {
	g.w.SaveEditControlValue()
	if name == "" {
		var ok bool
		name, ok = g.prompt("Enter the new column's name", "Inserting column", "")
		if !ok {
			return false
		}
	}

	at := max(0, min(icol+1, g.ds.Schema().Len()))
	grid.InsertColumn(g.ds, at, schema.NewColDefinition(name))
	log.Printf("Inserted column %q at %d", name, at)
	g.Refresh(FullRefresh())
	return true
}

// InsertColLeft inserts a column before the last clicked column.
func (g *DataGrid) InsertColLeft() bool {
	return g.InsertColumnMaybeQuery(g.clickedCol-1, "")
}

// InsertColRight inserts a column after the last clicked column.
func (g *DataGrid) InsertColRight() bool {
	return g.InsertColumnMaybeQuery(g.clickedCol, "")
}

// RenameColumn asks for a new name for column icol. A blank answer does
// nothing. It reports whether the column was renamed.
func (g *DataGrid) RenameColumn(icol int) bool {
	g.w.SaveEditControlValue()
	cols := g.ds.Schema()
	def, err := cols.ByPosition(icol)
	if err != nil || !grid.CanEditColumnHeaders(g.ds) {
		return false
	}

	name, ok := g.prompt("Enter the new column name", "Renaming column", def.DisplayName())
	if !ok {
		return false
	}
	def.Name = name
	def.PreferredName = ""
	if err := cols.SetPosition(icol, def); err != nil {
		log.Printf("Failed to rename column %d: %v", icol, err)
		return false
	}
	g.Refresh(FullRefresh())
	return true
}

// prompt asks the prompter and treats blank answers as cancellation.
func (g *DataGrid) prompt(message, title, initial string) (string, bool) {
	if g.prompter == nil {
		return "", false
	}
	v, ok := g.prompter.Prompt(message, title, initial)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// CanEditCell reports whether the editor may open on (irow, icol).
func (g *DataGrid) CanEditCell(irow, icol int) bool {
	return grid.CanEdit(g.ds, irow, icol)
}

// OnCellValueChanged commits an edit: the data source grows to include the
// cell if needed, takes the value, and the cell is redrawn.
func (g *DataGrid) OnCellValueChanged(irow, icol int, val string) {
	if irow < 0 || icol < 0 {
		return
	}
	if icol >= g.ds.Schema().Len() && !grid.CanAddColumns(g.ds) {
		log.Printf("Ignoring edit of (%d, %d) past the last column", irow, icol)
		return
	}

	grid.ExpandToInclude(g.ds, irow, icol)
	g.ds.Row(irow).SetCell(icol, val)
	g.ColorCell(irow, icol)
	g.Refresh(BoxRange(grid.Box{Top: irow, Left: icol, Bottom: irow, Right: icol}))
	g.AutoSizeColumns()
}

// AllowCellEdit whitelists (irow, icol) in the editable overlay and grows
// the widget so the row exists.
func (g *DataGrid) AllowCellEdit(irow, icol int) {
	g.ds.Overlay().Allow(irow, icol)
	if irow >= g.w.NumberRows() {
		g.w.AppendRows(irow - g.w.NumberRows() + 1)
	}
}

// MakeTextLinesEditable whitelists the conditionally editable cells of
// every text and link row.
func (g *DataGrid) MakeTextLinesEditable() {
	grid.MakeTextLinesEditable(g.ds)
	if n := g.ds.RowCount(); n > g.w.NumberRows() {
		g.w.AppendRows(n - g.w.NumberRows())
	}
}
