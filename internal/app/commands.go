package app

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/tui-datagrid/internal/datagrid"
	"github.com/pstuifzand/tui-datagrid/internal/export"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	import_parser "github.com/pstuifzand/tui-datagrid/internal/import"
	"github.com/pstuifzand/tui-datagrid/internal/links"
	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/search"
	"github.com/pstuifzand/tui-datagrid/internal/storage"
	"github.com/pstuifzand/tui-datagrid/internal/ui"
)

// Command is a `:` command.
type Command struct {
	Name        string
	Aliases     []string
	Args        string
	Description string
	Handler     func(a *App, args []string)
}

// GetKey returns the command as typed, with its arguments.
func (c Command) GetKey() string {
	if c.Args == "" {
		return ":" + c.Name
	}
	return ":" + c.Name + " " + c.Args
}

// GetDescription returns the description of this command
func (c Command) GetDescription() string {
	return c.Description
}

// openURL hands a URL to the desktop.
var openURL = func(url string) error {
	return exec.Command("xdg-open", url).Start()
}

// InitializeCommands sets up the `:` commands.
func (a *App) InitializeCommands() []Command {
	return []Command{
		{Name: "w", Args: "[file]", Description: "Save, optionally under a new name", Handler: func(a *App, args []string) { a.cmdWrite(args) }},
		{Name: "q", Description: "Quit if there are no unsaved changes", Handler: func(a *App, _ []string) {
			if a.dirty {
				a.SetStatus("Unsaved changes, use :w to save or :q! to discard")
				return
			}
			a.Quit()
		}},
		{Name: "q!", Description: "Quit without saving", Handler: func(a *App, _ []string) { a.Quit() }},
		{Name: "wq", Aliases: []string{"x"}, Description: "Save and quit", Handler: func(a *App, args []string) {
			if a.cmdWrite(args) {
				a.Quit()
			}
		}},
		{Name: "e", Aliases: []string{"edit"}, Args: "<file>", Description: "Open a grid file", Handler: (*App).cmdEdit},
		{Name: "e!", Args: "<file>", Description: "Open a grid file, discarding changes", Handler: func(a *App, args []string) {
			a.dirty = false
			a.cmdEdit(args)
		}},
		{Name: "insrow", Args: "[n]", Description: "Insert n empty rows above the cursor", Handler: func(a *App, args []string) {
			if n, ok := countArg(a, args); ok {
				a.insertRows(a.view.CursorRow(), n)
			}
		}},
		{Name: "delrows", Description: "Delete the selected rows", Handler: func(a *App, _ []string) { a.deleteRows() }},
		{Name: "delcols", Description: "Delete the selected columns", Handler: func(a *App, _ []string) { a.deleteCols() }},
		{Name: "inscol", Args: "[name]", Description: "Insert a column right of the cursor", Handler: func(a *App, args []string) {
			if !grid.CanAddColumns(a.table) {
				a.SetStatus("This grid does not allow new columns")
				return
			}
			a.grid.SaveClickLocation(a.view.CursorRow(), a.view.CursorCol(), datagrid.ClickLabel)
			if !a.grid.InsertColumnMaybeQuery(a.view.CursorCol(), strings.Join(args, " ")) {
				a.SetStatus("No column inserted")
			}
		}},
		{Name: "inscolleft", Description: "Insert a column left of the cursor", Handler: func(a *App, _ []string) { a.insertColumn(true) }},
		{Name: "rename", Description: "Rename the cursor column", Handler: func(a *App, _ []string) {
			if !a.grid.RenameColumn(a.view.CursorCol()) {
				a.SetStatus("Column not renamed")
			}
		}},
		{Name: "allow", Description: "Make the cursor cell editable", Handler: func(a *App, _ []string) {
			a.grid.AllowCellEdit(a.view.CursorRow(), a.view.CursorCol())
		}},
		{Name: "erase", Description: "Erase the selection", Handler: func(a *App, _ []string) { a.grid.EraseSelection() }},
		{Name: "copy", Description: "Copy the selection", Handler: func(a *App, _ []string) { a.grid.CopySelection() }},
		{Name: "paste", Description: "Paste at the cursor", Handler: func(a *App, _ []string) { a.grid.PasteAtSelection() }},
		{Name: "paste-system", Description: "Paste the system clipboard at the cursor", Handler: (*App).cmdPasteSystem},
		{Name: "col", Args: "<name>", Description: "Jump to the column best matching name", Handler: (*App).cmdColumn},
		{Name: "find", Aliases: []string{"select"}, Args: "<query>", Description: "Select all rows matching query", Handler: (*App).cmdFind},
		{Name: "textrow", Description: "Toggle the cursor row as a text banner", Handler: func(a *App, _ []string) { a.toggleRowKind(false) }},
		{Name: "linkrow", Description: "Toggle the cursor row as a link", Handler: func(a *App, _ []string) { a.toggleRowKind(true) }},
		{Name: "follow", Description: "Follow the first link in the cursor row", Handler: func(a *App, _ []string) { a.followLink() }},
		{Name: "import", Args: "<file> [csv|tsv|markdown]", Description: "Replace the grid with an imported file", Handler: (*App).cmdImport},
		{Name: "export", Args: "<markdown|tsv> <file>", Description: "Export the grid", Handler: (*App).cmdExport},
		{Name: "refresh", Description: "Redraw the grid from its data", Handler: func(a *App, _ []string) {
			a.grid.Refresh(datagrid.FullRefresh())
		}},
		{Name: "backups", Description: "Browse and restore backups of this file", Handler: func(a *App, _ []string) { a.showBackups() }},
		{Name: "bprev", Description: "Restore the previous backup", Handler: func(a *App, _ []string) { a.stepBackup(-1, false) }},
		{Name: "bnext", Description: "Restore the next backup", Handler: func(a *App, _ []string) { a.stepBackup(1, false) }},
		{Name: "sprev", Description: "Restore the previous backup of this session", Handler: func(a *App, _ []string) { a.stepBackup(-1, true) }},
		{Name: "snext", Description: "Restore the next backup of this session", Handler: func(a *App, _ []string) { a.stepBackup(1, true) }},
		{Name: "set", Args: "<key> <value>", Description: "Set a session setting", Handler: (*App).cmdSet},
		{Name: "messages", Description: "Show recent messages", Handler: (*App).cmdMessages},
		{Name: "help", Description: "Toggle help", Handler: func(a *App, _ []string) { a.help.Toggle() }},
		{Name: "debug", Description: "Toggle key and selection logging", Handler: func(a *App, _ []string) {
			a.SetDebugMode(!a.debugMode)
			datagrid.CaptureSelection(a.view).Dump("selection")
			a.SetStatus(fmt.Sprintf("Debug mode: %v", a.debugMode))
		}},
	}
}

// commandNames returns the names Tab completes to.
func (a *App) commandNames() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// handleCommand runs a command line typed after `:`.
func (a *App) handleCommand(line string) {
	parts := parseCommand(line)
	if len(parts) == 0 {
		return
	}
	if a.splash.IsVisible() && parts[0] != "q" && parts[0] != "q!" && parts[0] != "e" && parts[0] != "import" {
		a.splash.Hide()
	}
	cmd, ok := a.commands[parts[0]]
	if !ok {
		a.SetStatus("Unknown command: " + parts[0])
		return
	}
	cmd.Handler(a, parts[1:])
	a.updateDirty()
}

// parseCommand splits a command line into words. Single and double quotes
// group words, and a backslash escapes the next character.
func parseCommand(line string) []string {
	var (
		parts   []string
		cur     strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)
	for _, ch := range line {
		switch {
		case escaped:
			cur.WriteRune(ch)
			escaped = false
		case ch == '\\':
			escaped = true
			inWord = true
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				cur.WriteRune(ch)
			}
		case ch == '"' || ch == '\'':
			quote = ch
			inWord = true
		case ch == ' ' || ch == '\t':
			if inWord {
				parts = append(parts, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(ch)
			inWord = true
		}
	}
	if inWord {
		parts = append(parts, cur.String())
	}
	return parts
}

func countArg(a *App, args []string) (int, bool) {
	if len(args) == 0 {
		return 1, true
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		a.SetStatus("Expected a positive count, got " + args[0])
		return 0, false
	}
	return n, true
}

// cmdWrite saves, switching to args[0] when given.
func (a *App) cmdWrite(args []string) bool {
	if len(args) > 0 {
		a.store = storage.NewJSONStore(args[0])
		a.filePath = args[0]
	}
	if err := a.Save(); err != nil {
		a.SetStatus("Failed to save: " + err.Error())
		return false
	}
	a.SetStatus(fmt.Sprintf("Saved %s", a.filePath))
	return true
}

func (a *App) cmdEdit(args []string) {
	if len(args) == 0 {
		a.SetStatus("Usage: :e <file>")
		return
	}
	if a.dirty {
		a.SetStatus("Unsaved changes, use :w first or :e! to discard")
		return
	}
	if err := a.open(args[0]); err != nil {
		a.SetStatus(err.Error())
		return
	}
	a.backupIndex = -1
	a.SetStatus(fmt.Sprintf("Opened %s", args[0]))
}

func (a *App) cmdPasteSystem(_ []string) {
	cells, err := a.clip.ReadTSV()
	if err != nil {
		a.SetStatus("Failed to read clipboard: " + err.Error())
		return
	}
	if len(cells) == 0 {
		a.SetStatus("Clipboard is empty")
		return
	}
	a.grid.SetClipboard(cells)
	a.grid.PasteAtSelection()
}

// cmdColumn moves the cursor to the column whose name fuzzily matches
// args best.
func (a *App) cmdColumn(args []string) {
	if len(args) == 0 {
		a.SetStatus("Usage: :col <name>")
		return
	}
	query := strings.Join(args, " ")
	names := a.table.Schema().DisplayNames()
	ranks := fuzzy.RankFindFold(query, names)
	if len(ranks) == 0 {
		a.SetStatus("No column matches " + query)
		return
	}
	sort.Sort(ranks)
	icol := ranks[0].OriginalIndex
	a.view.SetCursor(a.view.CursorRow(), icol)
	a.view.MakeCellVisible(a.view.CursorRow(), icol)
}

func (a *App) cmdFind(args []string) {
	query := strings.Join(args, " ")
	rows, err := search.GetAllByQuery(a.table, query)
	if err != nil {
		a.SetStatus("Bad query: " + err.Error())
		return
	}
	if len(rows) == 0 {
		a.SetStatus("No rows match")
		return
	}
	a.view.ClearSelection()
	for _, r := range rows {
		a.view.SelectRow(r, true)
	}
	a.grid.MakeRowsVisible(rows)
	a.view.SetCursor(rows[0], a.view.CursorCol())
	a.view.MakeCellVisible(rows[0], a.view.CursorCol())
	first, last, _ := a.grid.SelectedRowRange()
	a.SetStatus(fmt.Sprintf("%d rows match between rows %d and %d", len(rows), first+1, last+1))
}

// toggleRowKind flips the cursor row between a data row and a text banner
// or link row.
func (a *App) toggleRowKind(link bool) {
	irow := a.view.CursorRow()
	if irow >= a.table.RowCount() {
		a.SetStatus("Not a data row")
		return
	}
	r, ok := a.table.Row(irow).(*memtable.Row)
	if !ok {
		return
	}
	if link {
		if !r.Link && !a.table.Schema().Contains(grid.DisplayNameColumn) {
			a.SetStatus("Link rows need a " + grid.DisplayNameColumn + " column")
			return
		}
		r.Link = !r.Link
		r.Text = false
	} else {
		r.Text = !r.Text
		r.Link = false
	}
	a.grid.MakeTextLinesEditable()
	a.grid.Refresh(datagrid.FullRefresh())
}

func (a *App) cmdImport(args []string) {
	if len(args) == 0 {
		a.SetStatus("Usage: :import <file> [format]")
		return
	}
	format := import_parser.DetectFormat(args[0])
	if len(args) > 1 {
		f, err := import_parser.ParseFormat(args[1])
		if err != nil {
			a.SetStatus(err.Error())
			return
		}
		if f != import_parser.FormatAuto {
			format = f
		}
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		a.SetStatus("Failed to read: " + err.Error())
		return
	}
	t, err := import_parser.ImportFile(string(content), format)
	if err != nil {
		a.SetStatus("Import failed: " + err.Error())
		return
	}
	a.splash.Hide()
	saved := a.savedSig
	a.setTable(t)
	a.savedSig = saved
	a.SetStatus(fmt.Sprintf("Imported %d rows from %s", t.RowCount(), args[0]))
}

func (a *App) cmdExport(args []string) {
	if len(args) < 2 {
		a.SetStatus("Usage: :export <markdown|tsv> <file>")
		return
	}
	var err error
	switch args[0] {
	case "markdown", "md":
		err = export.ExportToMarkdown(a.table, args[1])
	case "tsv":
		err = os.WriteFile(args[1], []byte(export.ToTSV(a.table.Values())), 0644)
	default:
		a.SetStatus("Unknown export format: " + args[0])
		return
	}
	if err != nil {
		a.SetStatus("Export failed: " + err.Error())
		return
	}
	a.SetStatus("Exported to " + args[1])
}

func (a *App) cmdSet(args []string) {
	switch len(args) {
	case 0:
		a.SetStatus("Usage: :set <key> [value]")
	case 1:
		a.SetStatus(fmt.Sprintf("%s=%s", args[0], a.cfg.Get(args[0])))
	default:
		a.cfg.Set(args[0], strings.Join(args[1:], " "))
	}
}

func (a *App) cmdMessages(_ []string) {
	msgs := a.status.Newest()
	if len(msgs) == 0 {
		return
	}
	texts := make([]string, 0, 5)
	for _, m := range msgs[:min(5, len(msgs))] {
		texts = append(texts, m.Text)
	}
	a.SetStatus(strings.Join(texts, " | "))
}

// editCellExternal edits the cursor cell in $EDITOR.
func (a *App) editCellExternal() {
	irow, icol := a.view.CursorRow(), a.view.CursorCol()
	if !a.grid.CanEditCell(irow, icol) {
		a.SetStatus("Cell is read-only")
		return
	}
	def, err := a.table.Schema().ByPosition(icol)
	if err != nil {
		def.Name = a.view.ColLabel(icol)
	}
	meta := ui.CellFrontmatter{Column: def.DisplayName(), Type: def.Type.String(), Row: irow + 1}
	validate := func(v string) string {
		if !a.validators.Valid(def.Type, v) {
			return fmt.Sprintf("%q is not a valid %s", v, def.Type)
		}
		return ""
	}

	if err := a.screen.Suspend(); err != nil {
		a.SetStatus("Failed to suspend screen: " + err.Error())
		return
	}
	value, changed, err := ui.EditCellInExternalEditor(meta, a.view.CellValue(irow, icol), a.cfg, validate)
	if rerr := a.screen.Resume(); rerr != nil {
		log.Printf("Failed to resume screen: %v", rerr)
	}
	if err != nil {
		a.SetStatus("Editor failed: " + err.Error())
		return
	}
	if !changed {
		return
	}
	a.view.SetCellValue(irow, icol, value)
	a.grid.OnCellValueChanged(irow, icol, value)
}

// openLink opens a grid file in this window or hands a URL to the desktop.
func (a *App) openLink(target string) {
	l := links.Link{Target: target}
	if l.IsURL() {
		if err := openURL(target); err != nil {
			a.SetStatus("Failed to open URL: " + err.Error())
			return
		}
		a.SetStatus("Opened " + target)
		return
	}
	if a.dirty {
		if err := a.Save(); err != nil {
			a.SetStatus("Failed to save: " + err.Error())
			return
		}
	}
	if err := a.open(target); err != nil {
		a.SetStatus(err.Error())
		return
	}
	a.SetStatus("Opened " + target)
}
