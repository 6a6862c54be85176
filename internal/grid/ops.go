package grid

import (
	"fmt"

	"github.com/pstuifzand/tui-datagrid/internal/permute"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// DisplayNameColumn is the column a link row is split around.
const DisplayNameColumn = "Display Name"

// AppendEmptyRows adds n rows at the end of ds and returns them.
func AppendEmptyRows(ds DataSource, n int) []Row {
	InsertRows(ds, ds.RowCount(), n)
	rows := ds.Rows()
	return rows[len(rows)-n:]
}

// InsertRows inserts n empty rows before row at and shifts overlay entries
// at or below that row down by n.
func InsertRows(ds DataSource, at, n int) {
	if n <= 0 {
		return
	}
	ds.InsertEmptyRows(at, n)
	ds.Overlay().ShiftRows(at, n)
}

// DeleteRows removes up to n rows starting at at. Requests past the end are
// truncated; at beyond the last row is a no-op. Overlay entries in the
// removed rows are dropped and later entries shift up. It returns the number
// of rows removed.
func DeleteRows(ds DataSource, at, n int) int {
	count := ds.RowCount()
	if at < 0 || at >= count || n <= 0 {
		return 0
	}
	n = min(n, count-at)

	rows := ds.Rows()
	kept := make([]Row, 0, count-n)
	kept = append(kept, rows[:at]...)
	kept = append(kept, rows[at+n:]...)
	ds.SetRows(kept)

	ds.Overlay().DeleteRows(at, n)
	return n
}

// MoveRows moves count rows starting at start so they begin at dest, and
// remaps the overlay through the same permutation. The caller is
// responsible for keeping dest in range.
func MoveRows(ds DataSource, start, count, dest int) []int {
	rows, perm := permute.BlockMove(ds.Rows(), start, count, dest)
	ds.SetRows(rows)
	ds.Overlay().RemapRows(perm)
	return perm
}

// InsertColumnHeader inserts def into the schema only; row cells are not
// touched. An index of -1 appends.
func InsertColumnHeader(ds DataSource, index int, def schema.ColDefinition) {
	if err := ds.Schema().Insert(index, def); err != nil {
		panic(fmt.Sprintf("grid: insert column header: %v", err))
	}
}

// InsertColumn inserts def into the schema at index and a blank cell into
// every row at the same position. An index of -1 appends.
func InsertColumn(ds DataSource, index int, def schema.ColDefinition) {
	InsertColumnHeader(ds, index, def)

	if index == -1 {
		for _, r := range ds.Rows() {
			r.Append("")
		}
		return
	}
	for _, r := range ds.Rows() {
		insertCell(r, index)
	}
	ds.Overlay().ShiftCols(index, 1)
}

// DeleteColumn removes the column at index from the schema and every row.
func DeleteColumn(ds DataSource, index int) {
	DeleteColumns(ds, index, index+1)
}

// DeleteColumns removes the columns in [lo, hi) from the schema and every row.
func DeleteColumns(ds DataSource, lo, hi int) {
	if err := ds.Schema().DeleteRange(lo, hi); err != nil {
		panic(fmt.Sprintf("grid: delete columns: %v", err))
	}
	for _, r := range ds.Rows() {
		r.DelCols(lo, hi)
	}
	ds.Overlay().DeleteCols(lo, hi-lo)
}

// MoveColumns moves count columns starting at index so they begin at
// target. The schema, the overlay and every row's cells are moved with the
// same permutation. A target outside the schema is a programming error.
func MoveColumns(ds DataSource, index, count, target int) []int {
	ncols := ds.Schema().Len()
	if target < 0 || target >= ncols {
		panic(fmt.Sprintf("grid: move columns target %d outside [0, %d)", target, ncols))
	}

	perm := ds.Schema().Move(index, count, target)
	ds.Overlay().RemapCols(perm)
	for _, r := range ds.Rows() {
		cells := r.Cells()
		for len(cells) < ncols {
			cells = append(cells, "")
		}
		moved, _ := permute.BlockMove(cells, index, count, target)
		r.SetCells(moved)
	}
	return perm
}

// ExpandToInclude grows ds so that (irow, icol) exists. Rows are always
// added; columns only when the source allows it. Asking for a column past
// the schema of a fixed-width source is a programming error.
func ExpandToInclude(ds DataSource, irow, icol int) {
	if irow < 0 || icol < 0 {
		panic(fmt.Sprintf("grid: expand to negative cell (%d, %d)", irow, icol))
	}

	if irow >= ds.RowCount() {
		InsertRows(ds, ds.RowCount(), irow-ds.RowCount()+1)
	}

	if icol < ds.Schema().Len() {
		return
	}
	if !CanAddColumns(ds) {
		panic(fmt.Sprintf("grid: column %d beyond schema width %d and the source cannot add columns", icol, ds.Schema().Len()))
	}
	for icol >= ds.Schema().Len() {
		ds.Schema().Append(schema.ColDefinition{})
		for _, r := range ds.Rows() {
			r.Append("")
		}
	}
}

// LimitBoxToActuals clamps b to the rows and columns that exist in ds.
func LimitBoxToActuals(ds DataSource, b Box) Box {
	lastRow := ds.RowCount() - 1
	lastCol := ds.Schema().Len() - 1
	b.Top = max(b.Top, 0)
	b.Left = max(b.Left, 0)
	b.Bottom = min(b.Bottom, lastRow)
	b.Right = min(b.Right, lastCol)
	return b
}

// MakeTextLinesEditable allows every EditableMaybe cell of the text and
// link rows of ds.
func MakeTextLinesEditable(ds DataSource) {
	cols := ds.Schema().All()
	for irow, r := range ds.Rows() {
		if !IsTextRow(r) && !IsLinkRow(r) {
			continue
		}
		for icol, c := range cols {
			if c.Editable == schema.EditableMaybe {
				ds.Overlay().Allow(irow, icol)
			}
		}
	}
}

// CellValue returns the value at (irow, icol), or "" outside the data.
func CellValue(ds DataSource, irow, icol int) string {
	if irow < 0 || irow >= ds.RowCount() || icol < 0 {
		return ""
	}
	return ds.Row(irow).Cell(icol)
}

// CanEdit reports whether (irow, icol) may be edited given its column's
// editability and the overlay. Cells past the schema are editable only
// when the source can add columns.
func CanEdit(ds DataSource, irow, icol int) bool {
	def, err := ds.Schema().ByPosition(icol)
	if err != nil {
		return CanAddColumns(ds)
	}
	switch def.Editable {
	case schema.EditableNo:
		return false
	case schema.EditableMaybe:
		return ds.Overlay().Allowed(irow, icol)
	}
	return true
}
