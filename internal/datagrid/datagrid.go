// Package datagrid binds a tabular data source to an on-screen grid
// widget. It keeps the two in sync, colors cells by their column type and
// value, and implements the structural edits a spreadsheet user expects:
// copy and paste, row and column insertion and deletion, and moving blocks
// of rows or columns with the arrow keys.
//
// Every operation mutates the data source first, then reindexes the
// editable overlay, then refreshes the widget.
package datagrid

import (
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/theme"
	"github.com/pstuifzand/tui-datagrid/internal/validate"
)

// DefaultSpareRows is the number of blank rows kept below the data.
const DefaultSpareRows = 12

// ClickKind records how the last cell or label was clicked.
type ClickKind string

const (
	ClickNone   ClickKind = ""
	ClickLeft   ClickKind = "left"
	ClickRight  ClickKind = "right"
	ClickDouble ClickKind = "double"
	ClickLabel  ClickKind = "label"
)

// DataGrid is the controller between a data source and a widget.
type DataGrid struct {
	w  Widget
	ds grid.DataSource

	palette       theme.GridPalette
	validators    *validate.Set
	colorOverride func(icol, irow int)
	prompter      Prompter
	sink          ClipboardSink
	spareRows     int

	clipboard  [][]string
	ctrlDown   bool
	clickedRow int
	clickedCol int
	clickKind  ClickKind
}

// Option configures a DataGrid.
type Option func(*DataGrid)

// WithColorOverride registers a callback run after each cell is colored,
// so the host can layer extra rules on top.
func WithColorOverride(fn func(icol, irow int)) Option {
	return func(g *DataGrid) { g.colorOverride = fn }
}

// WithPrompter sets the text-input collaborator used for column names.
func WithPrompter(p Prompter) Option {
	return func(g *DataGrid) { g.prompter = p }
}

// WithPalette sets the cell colors.
func WithPalette(p theme.GridPalette) Option {
	return func(g *DataGrid) { g.palette = p }
}

// WithValidators sets the value checks used when coloring.
func WithValidators(v *validate.Set) Option {
	return func(g *DataGrid) { g.validators = v }
}

// WithSpareRows sets how many blank rows a full refresh leaves below the data.
func WithSpareRows(n int) Option {
	return func(g *DataGrid) {
		if n >= 0 {
			g.spareRows = n
		}
	}
}

// WithClipboardSink mirrors every copy to sink as tab-separated text.
func WithClipboardSink(sink ClipboardSink) Option {
	return func(g *DataGrid) { g.sink = sink }
}

// New returns a controller for w bound to an empty data source.
func New(w Widget, opts ...Option) *DataGrid {
	g := &DataGrid{
		w:          w,
		ds:         memtable.New(),
		palette:    theme.DefaultGridPalette(),
		validators: validate.NewSet(nil),
		spareRows:  DefaultSpareRows,
		clickedRow: -1,
		clickedCol: -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Widget returns the grid widget.
func (g *DataGrid) Widget() Widget { return g.w }

// DataSource returns the bound data source.
func (g *DataGrid) DataSource() grid.DataSource { return g.ds }

// SetDataSource binds ds. The caller refreshes when ready.
func (g *DataGrid) SetDataSource(ds grid.DataSource) { g.ds = ds }

// NumRows returns the number of rows in the widget.
func (g *DataGrid) NumRows() int { return g.w.NumberRows() }

// NumCols returns the number of columns in the widget.
func (g *DataGrid) NumCols() int { return g.w.NumberCols() }

// SetNumCols grows or shrinks the widget to n columns. The schema is not
// touched.
func (g *DataGrid) SetNumCols(n int) {
	cur := g.w.NumberCols()
	switch {
	case cur > n:
		g.w.DeleteCols(n, cur-n)
	case cur < n:
		g.w.AppendCols(n - cur)
	}
}

// SaveClickLocation remembers where the user last clicked.
func (g *DataGrid) SaveClickLocation(irow, icol int, kind ClickKind) {
	g.clickedRow = irow
	g.clickedCol = icol
	g.clickKind = kind
}

// ClickedCell returns the last click location and kind.
func (g *DataGrid) ClickedCell() (irow, icol int, kind ClickKind) {
	return g.clickedRow, g.clickedCol, g.clickKind
}

// OnLabelLeftClick selects the whole column (icol >= 0) or row
// (irow >= 0) whose label was clicked.
func (g *DataGrid) OnLabelLeftClick(irow, icol int) {
	g.SaveClickLocation(irow, icol, ClickLabel)
	if icol >= 0 {
		g.w.ClearSelection()
		g.w.SelectCol(icol, false)
	}
	if irow >= 0 {
		g.w.ClearSelection()
		g.w.SelectRow(irow, false)
	}
}

// PopupState says which context-menu actions apply.
type PopupState struct {
	Copy  bool
	Paste bool
}

// PopupState records a right click at (irow, icol) and reports which
// actions a context menu there should enable. Nothing is enabled well past
// the defined columns.
func (g *DataGrid) PopupState(irow, icol int) PopupState {
	g.SaveClickLocation(irow, icol, ClickRight)
	if icol > g.ds.Schema().Len()+1 {
		return PopupState{}
	}
	return PopupState{
		Copy:  g.HasSelection(),
		Paste: g.HasClipboard(),
	}
}
