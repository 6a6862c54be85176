package datagrid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
)

// CellStyle is the visual state of one cell.
type CellStyle struct {
	Background tcell.Color
	Foreground tcell.Color
	Bold       bool
	Underline  bool
}

// Widget is the on-screen grid a DataGrid drives. Rows and columns are
// widget coordinates; the widget may hold more rows than the data source.
type Widget interface {
	NumberRows() int
	NumberCols() int
	AppendRows(n int)
	DeleteRows(pos, n int)
	AppendCols(n int)
	DeleteCols(pos, n int)
	// ClearGrid blanks every cell value, keeping the dimensions.
	ClearGrid()

	SetColLabel(icol int, label string)
	ColLabel(icol int) string

	CellValue(irow, icol int) string
	SetCellValue(irow, icol int, val string)

	// SetCellSpan merges nrows x ncols cells into the one at (irow, icol).
	// A 1x1 span removes any merge anchored there.
	SetCellSpan(irow, icol, nrows, ncols int)
	CellStyle(irow, icol int) CellStyle
	SetCellStyle(irow, icol int, s CellStyle)

	ColSize(icol int) int
	SetColSize(icol, width int)
	AutoSizeColumns()

	// SelectedRows and SelectedCols list whole rows and columns.
	// SelectedBlocks lists the other rectangular selections and
	// SelectedCells the individually selected cells.
	SelectedRows() []int
	SelectedCols() []int
	SelectedBlocks() []grid.Box
	SelectedCells() []grid.Cell
	ClearSelection()
	SelectRow(irow int, add bool)
	SelectCol(icol int, add bool)
	SelectBlock(b grid.Box, add bool)
	SelectCell(irow, icol int, add bool)

	CursorRow() int
	CursorCol() int
	SetCursor(irow, icol int)

	IsVisible(irow, icol int) bool
	MakeCellVisible(irow, icol int)

	// SaveEditControlValue commits a cell edit in progress, if any.
	SaveEditControlValue()
}

// Prompter asks the user for a line of text. ok is false when the user
// cancelled.
type Prompter interface {
	Prompt(message, title, initial string) (value string, ok bool)
}

// ClipboardSink receives copied cells as tab-separated text.
type ClipboardSink interface {
	WriteText(text string) error
}
