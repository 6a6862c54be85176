package app

import (
	"fmt"
	"log"

	"github.com/pstuifzand/tui-datagrid/internal/datagrid"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/socket"
)

// handleSocketMessage processes messages received from the Unix socket
func (a *App) handleSocketMessage(msg socket.Message) {
	log.Printf("Received socket message: command=%s, cells=%q, text=%v", msg.Command, msg.Cells, msg.Text)

	var resp *socket.Response
	switch msg.Command {
	case socket.CommandAddRow:
		resp = a.handleAddRowCommand(msg)
	case socket.CommandDump:
		resp = &socket.Response{Success: true, Message: fmt.Sprintf("%d rows", a.table.RowCount()), Data: a.table.Values()}
	default:
		log.Printf("Unknown socket command: %s", msg.Command)
		resp = &socket.Response{Success: false, Message: "unknown command: " + msg.Command}
	}

	if msg.ResponseChan != nil {
		msg.ResponseChan <- resp
	}
}

// handleAddRowCommand appends the cells as a new last row. Cells past the
// schema are dropped unless the grid may grow columns.
func (a *App) handleAddRowCommand(msg socket.Message) *socket.Response {
	if len(msg.Cells) == 0 {
		log.Printf("Add row command missing cells")
		return &socket.Response{Success: false, Message: "no cells given"}
	}
	if a.view.IsEditing() {
		a.view.SaveEditControlValue()
	}

	cells := msg.Cells
	if width := a.table.Schema().Len(); len(cells) > width && !grid.CanAddColumns(a.table) {
		log.Printf("Dropping %d cells past the last column", len(cells)-width)
		cells = cells[:width]
	}
	if len(cells) == 0 {
		return &socket.Response{Success: false, Message: "the grid has no columns"}
	}

	irow := a.lastUsedRow() + 1
	grid.ExpandToInclude(a.table, irow, max(0, len(cells)-1))
	r := a.table.Row(irow)
	for icol, v := range cells {
		r.SetCell(icol, v)
	}
	if msg.Text {
		if mr, ok := r.(*memtable.Row); ok {
			mr.Text = true
		}
		a.grid.MakeTextLinesEditable()
	}
	a.grid.Refresh(datagrid.FullRefresh())
	a.updateDirty()

	a.SetStatus(fmt.Sprintf("Added row %d", irow+1))
	return &socket.Response{Success: true, Message: fmt.Sprintf("added row %d", irow+1)}
}

// lastUsedRow returns the index of the last non-empty row, or -1.
func (a *App) lastUsedRow() int {
	for i := a.table.RowCount() - 1; i >= 0; i-- {
		if !a.table.Row(i).IsEmptyRow() {
			return i
		}
	}
	return -1
}
