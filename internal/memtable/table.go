// Package memtable is an in-memory data source: rows of strings with
// optional text-banner and link flags.
package memtable

import (
	"hash/fnv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// Row is a row of string cells.
type Row struct {
	cells []string
	Text  bool
	Link  bool
}

// NewRow returns a row holding cells.
func NewRow(cells ...string) *Row {
	r := &Row{cells: make([]string, len(cells))}
	copy(r.cells, cells)
	return r
}

func (r *Row) Cell(icol int) string {
	if icol < 0 || icol >= len(r.cells) {
		return ""
	}
	return r.cells[icol]
}

func (r *Row) SetCell(icol int, val string) {
	if icol < 0 {
		return
	}
	for len(r.cells) <= icol {
		r.cells = append(r.cells, "")
	}
	r.cells[icol] = val
}

func (r *Row) Cells() []string {
	out := make([]string, len(r.cells))
	copy(out, r.cells)
	return out
}

func (r *Row) SetCells(cells []string) {
	r.cells = make([]string, len(cells))
	copy(r.cells, cells)
}

func (r *Row) DelCols(lo, hi int) {
	lo = max(lo, 0)
	hi = min(hi, len(r.cells))
	if lo >= hi {
		return
	}
	r.cells = append(r.cells[:lo:lo], r.cells[hi:]...)
}

func (r *Row) Append(val string) {
	r.cells = append(r.cells, val)
}

func (r *Row) IsEmptyRow() bool {
	for _, c := range r.cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (r *Row) IsTextRow() bool { return r.Text }

func (r *Row) IsLinkRow() bool { return r.Link }

// Signature hashes the cells and flags.
func (r *Row) Signature() uint64 {
	h := fnv.New64a()
	for _, c := range r.cells {
		h.Write([]byte(c))
		h.Write([]byte{0})
	}
	var flags byte
	if r.Text {
		flags |= 1
	}
	if r.Link {
		flags |= 2
	}
	h.Write([]byte{flags})
	return h.Sum64()
}

// Table is a DataSource kept entirely in memory.
type Table struct {
	grid.Base
	rows []grid.Row

	// AllowAddColumns lets edits past the last column grow the schema.
	AllowAddColumns bool
	// AllowHeaderEdits lets the user rename columns.
	AllowHeaderEdits bool
	// FixedColumns forbids column moves.
	FixedColumns bool
	// TextColor, when set, paints text rows instead of bolding them.
	TextColor *tcell.Color
}

// New returns an empty table with the given columns.
func New(cols ...schema.ColDefinition) *Table {
	return &Table{Base: grid.NewBase(schema.NewList(cols...))}
}

// NewFromStrings builds a table with plain string columns named by header
// and one row per record.
func NewFromStrings(header []string, records [][]string) *Table {
	cols := make([]schema.ColDefinition, len(header))
	for i, h := range header {
		cols[i] = schema.NewColDefinition(h)
	}
	t := New(cols...)
	for _, rec := range records {
		t.rows = append(t.rows, NewRow(rec...))
	}
	return t
}

func (t *Table) RowCount() int { return len(t.rows) }

func (t *Table) Row(i int) grid.Row { return t.rows[i] }

func (t *Table) SetRow(i int, r grid.Row) { t.rows[i] = r }

func (t *Table) Rows() []grid.Row {
	out := make([]grid.Row, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *Table) SetRows(rows []grid.Row) {
	t.rows = make([]grid.Row, len(rows))
	copy(t.rows, rows)
}

// InsertEmptyRows inserts n blank rows, each as wide as the schema.
func (t *Table) InsertEmptyRows(at, n int) {
	if n <= 0 {
		return
	}
	at = max(0, min(at, len(t.rows)))
	fresh := make([]grid.Row, n)
	for i := range fresh {
		fresh[i] = NewRow(make([]string, t.ColCount())...)
	}
	rows := make([]grid.Row, 0, len(t.rows)+n)
	rows = append(rows, t.rows[:at]...)
	rows = append(rows, fresh...)
	rows = append(rows, t.rows[at:]...)
	t.rows = rows
}

// AppendRow adds r at the end.
func (t *Table) AppendRow(r *Row) {
	t.rows = append(t.rows, r)
}

func (t *Table) CanAddColumns() bool { return t.AllowAddColumns }

func (t *Table) CanEditColumnHeaders() bool { return t.AllowHeaderEdits }

func (t *Table) CanMoveColumns() bool { return !t.FixedColumns }

func (t *Table) SpecialTextColor() (tcell.Color, bool) {
	if t.TextColor == nil {
		return tcell.ColorDefault, false
	}
	return *t.TextColor, true
}

// Values returns a copy of every row's cells.
func (t *Table) Values() [][]string {
	out := make([][]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Cells()
	}
	return out
}
