// Package diff compares two versions of a grid: columns by name and rows
// by content.
package diff

// RowData is one row as it appears in one of the two grids.
type RowData struct {
	Index int
	Cells []string
	Text  bool
	Link  bool
}

// CellChange is one cell that differs between matched rows.
type CellChange struct {
	Column string
	Old    string
	New    string
}

// RowChange pairs a row of the old grid with the row that replaced it.
type RowChange struct {
	Old   RowData
	New   RowData
	Cells []CellChange
	// FlagsChanged is set when the text or link flag differs.
	FlagsChanged bool
}

// DiffResult contains the analysis of changes between two grids
type DiffResult struct {
	AddedColumns   []string
	RemovedColumns []string
	NewRows        []RowData
	DeletedRows    []RowData
	ModifiedRows   []RowChange
}

// Empty reports whether the grids are the same.
func (r *DiffResult) Empty() bool {
	return len(r.AddedColumns) == 0 && len(r.RemovedColumns) == 0 &&
		len(r.NewRows) == 0 && len(r.DeletedRows) == 0 && len(r.ModifiedRows) == 0
}

// DiffLineType indicates the type of diff line for rendering
type DiffLineType int

const (
	DiffTypeHeader DiffLineType = iota
	DiffTypeNewSection
	DiffTypeDeletedSection
	DiffTypeModifiedSection
	DiffTypeNewItem
	DiffTypeDeletedItem
	DiffTypeModifiedItem
	DiffTypeItemDetail
	DiffTypeSummary
	DiffTypeBlank
)

// DiffLine represents a rendered line in diff output
type DiffLine struct {
	Type    DiffLineType
	Content string
	Indent  int // Indentation level
}
