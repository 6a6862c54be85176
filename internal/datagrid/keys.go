package datagrid

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
)

// OnModifierDown records that a modifier key went down. Hosts that see
// bare modifier events report them here; terminals fold them into the key
// event instead.
func (g *DataGrid) OnModifierDown(mod tcell.ModMask) {
	if mod&tcell.ModCtrl != 0 {
		g.ctrlDown = true
	}
}

// OnModifierUp records that a modifier key was released.
func (g *DataGrid) OnModifierUp(mod tcell.ModMask) {
	if mod&tcell.ModCtrl != 0 {
		g.ctrlDown = false
	}
}

// OnKeyUp clears the control state when the released key carried it.
func (g *DataGrid) OnKeyUp(ev *tcell.EventKey) {
	g.OnModifierUp(ev.Modifiers())
}

func (g *DataGrid) ctrlKey(ev *tcell.EventKey, ctrlKey tcell.Key, letter rune) bool {
	if ev.Key() == ctrlKey {
		return true
	}
	held := g.ctrlDown || ev.Modifiers()&tcell.ModCtrl != 0
	return held && ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == letter
}

// OnKeyDown handles the grid's own shortcuts and reports whether ev was
// consumed:
//
//	Ctrl-C      copy the selection
//	Ctrl-V      paste at the selection
//	F5          full refresh
//	arrows      with a selection, move the selected rows or columns one step
func (g *DataGrid) OnKeyDown(ev *tcell.EventKey) bool {
	switch {
	case g.ctrlKey(ev, tcell.KeyCtrlC, 'c'):
		b := g.LocateSelection()
		g.CopyCells(b.Top, b.Left, b.Bottom, b.Right)
		return true

	case g.ctrlKey(ev, tcell.KeyCtrlV, 'v'):
		if !g.HasClipboard() {
			return false
		}
		b := g.LocateSelection()
		g.PasteCells(b.Top, b.Left)
		return true

	case ev.Key() == tcell.KeyF5:
		g.Refresh(FullRefresh())
		return true
	}

	if !g.HasSelection() {
		return false
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		g.moveSelectionLeft()
	case tcell.KeyRight:
		g.moveSelectionRight()
	case tcell.KeyUp:
		g.moveSelectionUp()
	case tcell.KeyDown:
		g.moveSelectionDown()
	default:
		return false
	}
	return true
}

func (g *DataGrid) moveSelectionLeft() {
	left, right := g.ExtendColSelection()
	if right == -1 || left <= 0 || right >= g.ds.Schema().Len() || !grid.CanMoveColumns(g.ds) {
		return
	}
	g.MoveCols(left, right-left+1, left-1)
	g.SelectCols(left-1, right-1)
	g.Refresh(ColRange(left-1, right))
}

func (g *DataGrid) moveSelectionRight() {
	left, right := g.ExtendColSelection()
	if right == -1 || right >= g.ds.Schema().Len()-1 || !grid.CanMoveColumns(g.ds) {
		return
	}
	g.MoveCols(left, right-left+1, left+1)
	g.SelectCols(left+1, right+1)
	g.Refresh(ColRange(left, right+1))
}

func (g *DataGrid) moveSelectionUp() {
	top, bottom := g.ExtendRowSelection()
	if top <= 0 || bottom >= g.ds.RowCount() {
		return
	}
	g.MoveRows(top, bottom-top+1, top-1)
	g.SelectRows(top-1, bottom-1)
	g.Refresh(RowRange(top-1, bottom))
}

func (g *DataGrid) moveSelectionDown() {
	top, bottom := g.ExtendRowSelection()
	if top == -1 || bottom >= g.ds.RowCount()-1 {
		return
	}
	g.MoveRows(top, bottom-top+1, top+1)
	g.SelectRows(top+1, bottom+1)
	g.Refresh(RowRange(top, bottom+1))
}
