package datagrid

import (
	"log"

	"github.com/davecgh/go-spew/spew"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
)

// Selection is a snapshot of a widget's selection, taken before a full
// refresh wipes it and re-applied afterwards.
type Selection struct {
	Rows   []int
	Cols   []int
	Blocks []grid.Box
	Cells  []grid.Cell
}

// CaptureSelection records the current selection of w.
func CaptureSelection(w Widget) *Selection {
	return &Selection{
		Rows:   w.SelectedRows(),
		Cols:   w.SelectedCols(),
		Blocks: w.SelectedBlocks(),
		Cells:  w.SelectedCells(),
	}
}

// Empty reports whether nothing was selected.
func (s *Selection) Empty() bool {
	return len(s.Rows) == 0 && len(s.Cols) == 0 && len(s.Blocks) == 0 && len(s.Cells) == 0
}

// Restore clears w's selection and re-applies the snapshot: rows and
// columns first, then blocks and cells added on top.
func (s *Selection) Restore(w Widget) {
	w.ClearSelection()
	for _, r := range s.Rows {
		w.SelectRow(r, true)
	}
	for _, c := range s.Cols {
		w.SelectCol(c, true)
	}
	for _, b := range s.Blocks {
		w.SelectBlock(b, true)
	}
	for _, c := range s.Cells {
		w.SelectCell(c.Row, c.Col, true)
	}
}

var dumpConfig = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

// Dump writes the snapshot to the log and returns the text.
func (s *Selection) Dump(label string) string {
	out := dumpConfig.Sdump(s)
	log.Printf("%s: selection %s", label, out)
	return out
}
