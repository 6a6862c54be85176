package grid

import (
	"encoding/json"
	"sort"

	"github.com/pstuifzand/tui-datagrid/internal/permute"
)

// Overlay is the set of cells whose column is only conditionally editable
// (schema.EditableMaybe) but which have been individually allowed.
//
// Entries refer to logical cells. Every structural change to rows or
// columns must be mirrored here so an entry keeps pointing at the same
// cell after the data has moved.
type Overlay struct {
	cells map[Cell]struct{}
}

// NewOverlay returns an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{cells: make(map[Cell]struct{})}
}

func (o *Overlay) init() {
	if o.cells == nil {
		o.cells = make(map[Cell]struct{})
	}
}

// Allow marks (irow, icol) editable.
func (o *Overlay) Allow(irow, icol int) {
	o.init()
	o.cells[Cell{irow, icol}] = struct{}{}
}

// Revoke removes (irow, icol) from the overlay.
func (o *Overlay) Revoke(irow, icol int) {
	delete(o.cells, Cell{irow, icol})
}

// Allowed reports whether (irow, icol) has been marked editable.
func (o *Overlay) Allowed(irow, icol int) bool {
	if o == nil {
		return false
	}
	_, ok := o.cells[Cell{irow, icol}]
	return ok
}

// Len returns the number of entries.
func (o *Overlay) Len() int {
	if o == nil {
		return 0
	}
	return len(o.cells)
}

// Clear removes every entry.
func (o *Overlay) Clear() {
	o.cells = make(map[Cell]struct{})
}

// Cells returns the entries sorted by row, then column.
func (o *Overlay) Cells() []Cell {
	out := make([]Cell, 0, o.Len())
	if o != nil {
		for c := range o.cells {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// rebuild replaces every entry by fn(entry). Entries for which fn returns
// false are dropped.
func (o *Overlay) rebuild(fn func(Cell) (Cell, bool)) {
	next := make(map[Cell]struct{}, len(o.cells))
	for c := range o.cells {
		if nc, ok := fn(c); ok {
			next[nc] = struct{}{}
		}
	}
	o.cells = next
}

// ShiftRows accounts for n rows inserted at row at.
func (o *Overlay) ShiftRows(at, n int) {
	o.rebuild(func(c Cell) (Cell, bool) {
		if c.Row >= at {
			c.Row += n
		}
		return c, true
	})
}

// DeleteRows accounts for the removal of rows [at, at+n).
func (o *Overlay) DeleteRows(at, n int) {
	o.rebuild(func(c Cell) (Cell, bool) {
		switch {
		case c.Row < at:
		case c.Row < at+n:
			return c, false
		default:
			c.Row -= n
		}
		return c, true
	})
}

// RemapRows moves every entry's row through an old-to-new permuter.
// Entries with no valid mapping are dropped.
func (o *Overlay) RemapRows(perm []int) {
	o.rebuild(func(c Cell) (Cell, bool) {
		nr, ok := permute.Lookup(perm, c.Row)
		c.Row = nr
		return c, ok
	})
}

// ShiftCols accounts for n columns inserted at column at.
func (o *Overlay) ShiftCols(at, n int) {
	o.rebuild(func(c Cell) (Cell, bool) {
		if c.Col >= at {
			c.Col += n
		}
		return c, true
	})
}

// DeleteCols accounts for the removal of columns [at, at+n).
func (o *Overlay) DeleteCols(at, n int) {
	o.rebuild(func(c Cell) (Cell, bool) {
		switch {
		case c.Col < at:
		case c.Col < at+n:
			return c, false
		default:
			c.Col -= n
		}
		return c, true
	})
}

// RemapCols moves every entry's column through an old-to-new permuter.
func (o *Overlay) RemapCols(perm []int) {
	o.rebuild(func(c Cell) (Cell, bool) {
		nc, ok := permute.Lookup(perm, c.Col)
		c.Col = nc
		return c, ok
	})
}

// MarshalJSON encodes the overlay as a sorted array of cells.
func (o *Overlay) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Cells())
}

// UnmarshalJSON decodes an array of cells.
func (o *Overlay) UnmarshalJSON(data []byte) error {
	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	o.Clear()
	for _, c := range cells {
		o.Allow(c.Row, c.Col)
	}
	return nil
}
