package grid

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// DataSource is the tabular data bound to a grid. Concrete sources usually
// embed Base for the schema, overlay and capability defaults, and implement
// the row methods themselves.
type DataSource interface {
	Schema() *schema.List
	SetSchema(cols *schema.List)

	// Overlay holds the individually allowed cells of EditableMaybe columns.
	Overlay() *Overlay

	RowCount() int
	Row(i int) Row
	SetRow(i int, r Row)
	Rows() []Row
	SetRows(rows []Row)

	// InsertEmptyRows inserts n pristine rows before position at. It must
	// not touch the overlay; use InsertRows for that.
	InsertEmptyRows(at, n int)
}

// ColumnAdder is implemented by sources that may grow new columns.
type ColumnAdder interface {
	CanAddColumns() bool
}

// HeaderEditor is implemented by sources whose column headers may be renamed.
type HeaderEditor interface {
	CanEditColumnHeaders() bool
}

// ColumnMover is implemented by sources that want to forbid column moves.
type ColumnMover interface {
	CanMoveColumns() bool
}

// TextColorer is implemented by sources that paint text rows with a
// background color instead of bold text.
type TextColorer interface {
	SpecialTextColor() (tcell.Color, bool)
}

// CanAddColumns reports whether ds allows new columns. Default false.
func CanAddColumns(ds DataSource) bool {
	if c, ok := ds.(ColumnAdder); ok {
		return c.CanAddColumns()
	}
	return false
}

// CanEditColumnHeaders reports whether ds allows header renames. Default false.
func CanEditColumnHeaders(ds DataSource) bool {
	if c, ok := ds.(HeaderEditor); ok {
		return c.CanEditColumnHeaders()
	}
	return false
}

// CanMoveColumns reports whether ds allows column moves. Default true.
func CanMoveColumns(ds DataSource) bool {
	if c, ok := ds.(ColumnMover); ok {
		return c.CanMoveColumns()
	}
	return true
}

// SpecialTextColor returns ds's text-row color, if it has one.
func SpecialTextColor(ds DataSource) (tcell.Color, bool) {
	if c, ok := ds.(TextColorer); ok {
		return c.SpecialTextColor()
	}
	return tcell.ColorDefault, false
}

// Base carries the schema and editable overlay shared by every data source.
type Base struct {
	cols    *schema.List
	overlay *Overlay
}

// NewBase returns a Base with the given schema.
func NewBase(cols *schema.List) Base {
	if cols == nil {
		cols = schema.NewList()
	}
	return Base{cols: cols, overlay: NewOverlay()}
}

// Schema returns the column definitions.
func (b *Base) Schema() *schema.List {
	if b.cols == nil {
		b.cols = schema.NewList()
	}
	return b.cols
}

// SetSchema replaces the column definitions.
func (b *Base) SetSchema(cols *schema.List) {
	b.cols = cols
}

// Overlay returns the editable-cell overlay.
func (b *Base) Overlay() *Overlay {
	if b.overlay == nil {
		b.overlay = NewOverlay()
	}
	return b.overlay
}

// ColCount returns the number of defined columns.
func (b *Base) ColCount() int {
	return b.Schema().Len()
}

// ColHeaders returns the canonical column names.
func (b *Base) ColHeaders() []string {
	return b.Schema().Names()
}

// ColHeaderIndex returns the position of the header s, or -1.
func (b *Base) ColHeaderIndex(s string, caseSensitive bool) int {
	for i, h := range b.ColHeaders() {
		if h == s || (!caseSensitive && strings.EqualFold(h, s)) {
			return i
		}
	}
	return -1
}
