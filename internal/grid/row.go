// Package grid defines the contract between a data grid and the tabular
// data it displays: rows, data sources, the editable-cell overlay, and the
// structural operations that keep them consistent.
package grid

// Row is one row of a data source. Cells are addressed by column position.
type Row interface {
	// Cell returns the value at icol, or "" when the row is shorter.
	Cell(icol int) string
	// SetCell stores val at icol, padding the row with blanks if needed.
	SetCell(icol int, val string)
	// Cells returns the row's values in column order.
	Cells() []string
	// SetCells replaces all of the row's values.
	SetCells(cells []string)
	// DelCols removes the cells in [lo, hi).
	DelCols(lo, hi int)
	// Append adds a cell at the end. Only needed when columns can be added.
	Append(val string)
	// IsEmptyRow reports whether every cell is blank.
	IsEmptyRow() bool
}

// TextRow is implemented by rows that may be rendered as a single banner
// cell spanning the whole row.
type TextRow interface {
	IsTextRow() bool
}

// LinkRow is implemented by rows that may be rendered as a link.
// A source that has link rows must have a "Display Name" column.
type LinkRow interface {
	IsLinkRow() bool
}

// Signer is implemented by rows that can compute a change signature.
type Signer interface {
	Signature() uint64
}

// IsTextRow reports whether r is a text banner row. Rows that do not
// implement TextRow are not.
func IsTextRow(r Row) bool {
	if tr, ok := r.(TextRow); ok {
		return tr.IsTextRow()
	}
	return false
}

// IsLinkRow reports whether r is a link row. Rows that do not implement
// LinkRow are not.
func IsLinkRow(r Row) bool {
	if lr, ok := r.(LinkRow); ok {
		return lr.IsLinkRow()
	}
	return false
}

// RowSignature returns r's signature, or 0 when r does not implement Signer.
func RowSignature(r Row) uint64 {
	if s, ok := r.(Signer); ok {
		return s.Signature()
	}
	return 0
}

// insertCell splices a blank cell into r at icol without overwriting.
func insertCell(r Row, icol int) {
	cells := r.Cells()
	if icol < 0 || icol > len(cells) {
		for len(cells) < icol {
			cells = append(cells, "")
		}
		r.SetCells(append(cells, ""))
		return
	}
	out := make([]string, 0, len(cells)+1)
	out = append(out, cells[:icol]...)
	out = append(out, "")
	out = append(out, cells[icol:]...)
	r.SetCells(out)
}
