package grid

import "fmt"

// Cell addresses one cell by row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Box is an inclusive rectangle of cells, as used by selections.
type Box struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// NoBox is returned where a rectangle is absent.
var NoBox = Box{-1, -1, -1, -1}

// IsEmpty reports whether the box covers no cells.
func (b Box) IsEmpty() bool {
	return b.Top < 0 || b.Left < 0 || b.Bottom < b.Top || b.Right < b.Left
}

// Rows returns the number of rows the box covers.
func (b Box) Rows() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Bottom - b.Top + 1
}

// Cols returns the number of columns the box covers.
func (b Box) Cols() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Right - b.Left + 1
}

// Contains reports whether (irow, icol) lies inside the box.
func (b Box) Contains(irow, icol int) bool {
	return !b.IsEmpty() && irow >= b.Top && irow <= b.Bottom && icol >= b.Left && icol <= b.Right
}

// Union returns the smallest box covering both b and o.
func (b Box) Union(o Box) Box {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box{
		Top:    min(b.Top, o.Top),
		Left:   min(b.Left, o.Left),
		Bottom: max(b.Bottom, o.Bottom),
		Right:  max(b.Right, o.Right),
	}
}

func (b Box) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", b.Top, b.Left, b.Bottom, b.Right)
}
