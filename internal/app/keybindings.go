package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/datagrid"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/links"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(*App)
}

// GetKey returns the key of this keybinding
func (kb KeyBinding) GetKey() string {
	return string(kb.Key)
}

// GetDescription returns the description of this keybinding
func (kb KeyBinding) GetDescription() string {
	return kb.Description
}

// PendingKeyBinding represents a pending key (like 'g') that waits for a second key
type PendingKeyBinding struct {
	Prefix      rune
	Description string
	Sequences   map[rune]KeyBinding
}

// GetKey returns the prefix key
func (pkb PendingKeyBinding) GetKey() string {
	return string(pkb.Prefix)
}

// GetDescription lists the sequences under the prefix.
func (pkb PendingKeyBinding) GetDescription() string {
	keys := make([]rune, 0, len(pkb.Sequences))
	for k := range pkb.Sequences {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%c%c %s", pkb.Prefix, k, pkb.Sequences[k].Description)
	}
	return pkb.Description + ": " + strings.Join(parts, ", ")
}

// InitializeKeybindings sets up all the key bindings
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: 'j', Description: "Move down", Handler: func(app *App) { app.view.MoveCursor(1, 0, false) }},
		{Key: 'k', Description: "Move up", Handler: func(app *App) { app.view.MoveCursor(-1, 0, false) }},
		{Key: 'h', Description: "Move left", Handler: func(app *App) { app.view.MoveCursor(0, -1, false) }},
		{Key: 'l', Description: "Move right", Handler: func(app *App) { app.view.MoveCursor(0, 1, false) }},
		{Key: 'J', Description: "Extend selection down", Handler: func(app *App) { app.view.MoveCursor(1, 0, true) }},
		{Key: 'K', Description: "Extend selection up", Handler: func(app *App) { app.view.MoveCursor(-1, 0, true) }},
		{Key: 'H', Description: "Extend selection left", Handler: func(app *App) { app.view.MoveCursor(0, -1, true) }},
		{Key: 'L', Description: "Extend selection right", Handler: func(app *App) { app.view.MoveCursor(0, 1, true) }},
		{Key: 'G', Description: "Go to last row", Handler: func(app *App) { app.gotoRow(max(0, app.table.RowCount()-1)) }},
		{Key: '0', Description: "Go to first column", Handler: func(app *App) {
			app.view.SetCursor(app.view.CursorRow(), 0)
			app.view.MakeCellVisible(app.view.CursorRow(), 0)
		}},
		{Key: '$', Description: "Go to last column", Handler: func(app *App) {
			last := max(0, app.table.Schema().Len()-1)
			app.view.SetCursor(app.view.CursorRow(), last)
			app.view.MakeCellVisible(app.view.CursorRow(), last)
		}},
		{Key: 'i', Description: "Edit cell", Handler: func(app *App) { app.beginEdit(false) }},
		{Key: 'c', Description: "Change cell (start empty)", Handler: func(app *App) { app.beginEdit(true) }},
		{Key: 'E', Description: "Edit cell in external editor", Handler: func(app *App) { app.editCellExternal() }},
		{Key: 'x', Description: "Erase selection", Handler: func(app *App) { app.grid.EraseSelection() }},
		{Key: 'y', Description: "Copy selection", Handler: func(app *App) {
			app.grid.CopySelection()
			if app.grid.HasClipboard() {
				app.SetStatus(fmt.Sprintf("Copied %d rows", len(app.grid.Clipboard())))
			}
		}},
		{Key: 'p', Description: "Paste at cursor", Handler: func(app *App) { app.grid.PasteAtSelection() }},
		{Key: 'o', Description: "Insert row below", Handler: func(app *App) { app.insertRows(app.view.CursorRow()+1, 1) }},
		{Key: 'O', Description: "Insert row above", Handler: func(app *App) { app.insertRows(app.view.CursorRow(), 1) }},
		{Key: 'd', Description: "Delete selected rows", Handler: func(app *App) { app.deleteRows() }},
		{Key: 'D', Description: "Delete selected columns", Handler: func(app *App) { app.deleteCols() }},
		{Key: 'a', Description: "Insert column right", Handler: func(app *App) { app.insertColumn(false) }},
		{Key: 'A', Description: "Insert column left", Handler: func(app *App) { app.insertColumn(true) }},
		{Key: 'R', Description: "Rename column", Handler: func(app *App) {
			if !app.grid.RenameColumn(app.view.CursorCol()) {
				app.SetStatus("Column not renamed")
			}
		}},
		{Key: 'V', Description: "Select row", Handler: func(app *App) {
			r := app.view.CursorRow()
			app.grid.SelectRows(r, r)
		}},
		{Key: 'v', Description: "Select column", Handler: func(app *App) {
			c := app.view.CursorCol()
			app.grid.SelectCols(c, c)
		}},
		{Key: 'f', Description: "Follow link in cell", Handler: func(app *App) { app.followLink() }},
		{Key: '/', Description: "Search rows", Handler: func(app *App) { app.search.Start() }},
		{Key: 'n', Description: "Next match", Handler: func(app *App) { app.jumpMatch(true) }},
		{Key: 'N', Description: "Previous match", Handler: func(app *App) { app.jumpMatch(false) }},
		{Key: ':', Description: "Command mode", Handler: func(app *App) { app.command.Start() }},
		{Key: '?', Description: "Toggle help", Handler: func(app *App) { app.help.Toggle() }},
	}
}

// InitializePendingKeybindings sets up the two-key sequences.
func (a *App) InitializePendingKeybindings() []PendingKeyBinding {
	return []PendingKeyBinding{
		{
			Prefix:      'g',
			Description: "Go to",
			Sequences: map[rune]KeyBinding{
				'g': {Key: 'g', Description: "first row", Handler: func(app *App) { app.gotoRow(0) }},
				'e': {Key: 'e', Description: "last row", Handler: func(app *App) { app.gotoRow(max(0, app.table.RowCount()-1)) }},
				'l': {Key: 'l', Description: "next link row", Handler: func(app *App) { app.gotoLinkRow() }},
			},
		},
	}
}

func (a *App) insertRows(irow, n int) {
	a.grid.InsertEmptyRows(irow, n)
	a.view.SetCursor(irow, a.view.CursorCol())
}

func (a *App) deleteRows() {
	if !a.grid.HasSelection() {
		r := a.view.CursorRow()
		a.grid.SelectRows(r, r)
	}
	a.grid.DeleteSelectedRows()
}

func (a *App) deleteCols() {
	if !a.grid.HasSelection() {
		c := a.view.CursorCol()
		a.grid.SelectCols(c, c)
	}
	a.grid.DeleteSelectedColumns()
}

func (a *App) insertColumn(left bool) {
	if !grid.CanAddColumns(a.table) {
		a.SetStatus("This grid does not allow new columns")
		return
	}
	a.grid.SaveClickLocation(a.view.CursorRow(), a.view.CursorCol(), datagrid.ClickLabel)
	var ok bool
	if left {
		ok = a.grid.InsertColLeft()
	} else {
		ok = a.grid.InsertColRight()
	}
	if !ok {
		a.SetStatus("No column inserted")
	}
}

func (a *App) jumpMatch(forward bool) {
	var (
		row int
		ok  bool
	)
	if forward {
		row, ok = a.search.NextMatch()
	} else {
		row, ok = a.search.PrevMatch()
	}
	if !ok {
		a.SetStatus("No matches")
		return
	}
	a.gotoRow(row)
}

// gotoLinkRow moves to the next link row below the cursor, wrapping.
func (a *App) gotoLinkRow() {
	n := a.table.RowCount()
	for i := 1; i <= n; i++ {
		r := (a.view.CursorRow() + i) % n
		if grid.IsLinkRow(a.table.Row(r)) {
			a.gotoRow(r)
			return
		}
	}
	a.SetStatus("No link rows")
}

// followLink opens the first link in the cursor row.
func (a *App) followLink() {
	irow := a.view.CursorRow()
	if irow >= a.table.RowCount() {
		return
	}
	found := links.RowLinks(a.table.Row(irow))
	if len(found) == 0 {
		a.SetStatus("No link in this row")
		return
	}
	a.openLink(found[0].Target)
}
