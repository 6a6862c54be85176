package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-datagrid/internal/clipboard"
	"github.com/pstuifzand/tui-datagrid/internal/config"
	"github.com/pstuifzand/tui-datagrid/internal/datagrid"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/history"
	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/socket"
	"github.com/pstuifzand/tui-datagrid/internal/storage"
	"github.com/pstuifzand/tui-datagrid/internal/template"
	"github.com/pstuifzand/tui-datagrid/internal/theme"
	"github.com/pstuifzand/tui-datagrid/internal/ui"
	"github.com/pstuifzand/tui-datagrid/internal/validate"
)

const (
	autoSaveDelay = 5 * time.Second
	statusTTL     = 3 * time.Second
)

// App is the main application controller
type App struct {
	screen  *ui.Screen
	view    *ui.GridView
	grid    *datagrid.DataGrid
	table   *memtable.Table
	store   *storage.JSONStore
	cfg     *config.Config
	clip    *clipboard.System
	backups *storage.BackupManager

	validators *validate.Set

	prompt         *ui.PromptDialog
	command        *ui.CommandMode
	search         *ui.Search
	help           *ui.HelpScreen
	splash         *ui.SplashScreen
	backupSelector *ui.BackupSelectorWidget
	status         *ui.StatusLog

	socketServer *socket.Server
	events       chan tcell.Event

	keybindings     map[rune]KeyBinding
	pendingBindings map[rune]PendingKeyBinding
	pendingKey      rune
	commands        map[string]Command

	filePath     string
	sessionID    string
	backupIndex  int
	savedSig     uint64
	dirty        bool
	autoSaveTime time.Time
	quit         bool
	debugMode    bool
}

// NewApp opens filePath on the terminal. An empty path shows the splash
// screen until a file is opened with :e.
func NewApp(filePath string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	screen, err := ui.NewScreenWithTheme(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	screen.EnableMouse()

	backups, err := storage.NewBackupManager()
	if err != nil {
		log.Printf("Backups disabled: %v", err)
	}

	a, err := newApp(screen, cfg, backups, filePath)
	if err != nil {
		screen.Close()
		return nil, err
	}

	if hm, err := history.NewManager(); err == nil {
		a.command = ui.NewCommandModeWithHistory(hm)
		a.command.SetCompletions(a.commandNames())
		a.search = ui.NewSearchWithHistory(hm)
		a.search.SetDataSource(a.table)
	} else {
		log.Printf("Command history disabled: %v", err)
	}

	if server, err := socket.NewServer(os.Getpid()); err == nil {
		a.socketServer = server
		server.Start()
	} else {
		log.Printf("Socket server disabled: %v", err)
	}
	return a, nil
}

// newApp wires an App around an initialized screen.
func newApp(screen *ui.Screen, cfg *config.Config, backups *storage.BackupManager, filePath string) (*App, error) {
	a := &App{
		screen:         screen,
		view:           ui.NewGridView(),
		cfg:            cfg,
		clip:           clipboard.NewSystem(),
		backups:        backups,
		command:        ui.NewCommandMode(),
		search:         ui.NewSearch(),
		help:           ui.NewHelpScreen(),
		splash:         ui.NewSplashScreen(),
		backupSelector: ui.NewBackupSelectorWidget(),
		status:         ui.NewStatusLog(100),
		events:         make(chan tcell.Event, 16),
		sessionID:      storage.GenerateSessionID(),
		autoSaveTime:   time.Now(),
		backupIndex:    -1,
	}

	a.prompt = ui.NewPromptDialog(screen, a.render)
	a.prompt.NextEvent = a.nextEvent

	validators := validate.NewSet(cfg.Grid.DateFormats)
	validators.MinYear = cfg.Grid.MinYear
	validators.MaxYear = cfg.Grid.MaxYear
	a.validators = validators

	opts := []datagrid.Option{
		datagrid.WithPrompter(a.prompt),
		datagrid.WithPalette(screen.Theme.Grid),
		datagrid.WithValidators(validators),
		datagrid.WithSpareRows(cfg.Grid.SpareRows),
	}
	if cfg.Grid.SystemClipboard && a.clip.Available() {
		opts = append(opts, datagrid.WithClipboardSink(a.clip))
	}
	a.grid = datagrid.New(a.view, opts...)
	a.view.OnCellEdited = func(irow, icol int, value string) {
		if template.HasExpressions(value) {
			expanded, err := a.expandTemplate(irow, value)
			if err != nil {
				a.SetStatus("Template: " + err.Error())
			} else {
				value = expanded
			}
		}
		a.grid.OnCellValueChanged(irow, icol, value)
	}

	a.keybindings = make(map[rune]KeyBinding)
	var infos []ui.KeyBindingInfo
	for _, kb := range a.InitializeKeybindings() {
		a.keybindings[kb.Key] = kb
		infos = append(infos, kb)
	}
	a.pendingBindings = make(map[rune]PendingKeyBinding)
	for _, pkb := range a.InitializePendingKeybindings() {
		a.pendingBindings[pkb.Prefix] = pkb
		infos = append(infos, pkb)
	}
	a.help.SetKeybindings(infos)

	a.commands = make(map[string]Command)
	var cmdInfos []ui.KeyBindingInfo
	for _, c := range a.InitializeCommands() {
		a.commands[c.Name] = c
		for _, alias := range c.Aliases {
			a.commands[alias] = c
		}
		cmdInfos = append(cmdInfos, c)
	}
	a.help.SetCommands(cmdInfos)
	a.command.SetCompletions(a.commandNames())

	if filePath == "" {
		a.splash.Show()
		a.setTable(storage.NewTable())
		return a, nil
	}
	if err := a.open(filePath); err != nil {
		return nil, err
	}
	return a, nil
}

// open loads filePath, or starts a new grid when it does not exist.
func (a *App) open(filePath string) error {
	store := storage.NewJSONStore(filePath)
	t, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filePath, err)
	}
	a.store = store
	a.filePath = filePath
	a.splash.Hide()
	a.setTable(t)
	log.Printf("Opened %s: %d rows, %d columns", filePath, t.RowCount(), t.Schema().Len())
	return nil
}

// setTable binds t to the grid and treats it as saved.
func (a *App) setTable(t *memtable.Table) {
	if a.view.IsEditing() {
		a.view.CancelEdit()
	}
	a.table = t
	a.grid.SetDataSource(t)
	a.grid.MakeTextLinesEditable()
	a.view.ClearSelection()
	a.view.SetCursor(0, 0)
	a.grid.Refresh(datagrid.FullRefresh())
	a.search.SetDataSource(t)
	a.savedSig = a.signature()
	a.dirty = false
}

// signature summarizes the table so edits can be detected without every
// operation reporting them.
func (a *App) signature() uint64 {
	h := a.table.Schema().Signature()
	for _, r := range a.table.Rows() {
		h = h*1099511628211 ^ grid.RowSignature(r)
	}
	h = h*1099511628211 ^ uint64(a.table.RowCount())
	return h*1099511628211 ^ uint64(a.table.Overlay().Len())
}

func (a *App) updateDirty() {
	if sig := a.signature(); sig != a.savedSig {
		if !a.dirty {
			a.autoSaveTime = time.Now()
		}
		a.dirty = true
	} else {
		a.dirty = false
	}
}

// expandTemplate fills in the {{...}} expressions of a value typed into
// row irow.
func (a *App) expandTemplate(irow int, value string) (string, error) {
	env := template.Env{
		WeekStart: time.Monday,
		Row:       irow + 1,
		Prompt: func(q string) (string, bool) {
			return a.prompt.Prompt(q, "Template", "")
		},
		Cell: func(column string) (string, bool) {
			icol, err := a.table.Schema().IndexOf(column)
			if err != nil {
				return "", false
			}
			return grid.CellValue(a.table, irow, icol), true
		},
	}
	if a.clip.Available() {
		env.Clipboard = a.clip.ReadText
	}
	return template.Expand(value, env)
}

// nextEvent feeds nested event loops, such as prompts, from the same
// channel the main loop reads.
func (a *App) nextEvent() tcell.Event {
	return <-a.events
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	go func() {
		for {
			event := a.screen.PollEvent()
			a.events <- event
			if event == nil {
				return
			}
		}
	}()

	var socketMsgs <-chan socket.Message
	if a.socketServer != nil {
		socketMsgs = a.socketServer.Messages()
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	a.render()
	for !a.quit {
		select {
		case ev := <-a.events:
			if ev == nil {
				return nil
			}
			a.handleRawEvent(ev)
			a.render()
		case msg := <-socketMsgs:
			a.handleSocketMessage(msg)
			a.render()
		case <-ticker.C:
			if a.dirty && a.store != nil && time.Since(a.autoSaveTime) > autoSaveDelay {
				if err := a.Save(); err != nil {
					a.SetStatus("Failed to save: " + err.Error())
				} else {
					a.SetStatus("Saved")
				}
			}
			a.render()
		}
	}
	return nil
}

// Close releases the screen and the socket.
func (a *App) Close() error {
	if a.socketServer != nil {
		a.socketServer.Stop()
		a.socketServer = nil
	}
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Clear()
	width, height := a.screen.Size()

	if a.splash.IsVisible() {
		a.splash.Render(a.screen)
		a.command.Render(a.screen, height-2)
		a.renderStatus(width, height-1)
		a.screen.Show()
		return
	}

	title := "[No Name]"
	if a.filePath != "" {
		title = filepath.Base(a.filePath)
	}
	if a.dirty {
		title += " [+]"
	}
	a.screen.FillRow(0, 0, width, a.screen.HeaderStyle())
	a.screen.DrawStringLimited(0, 0, " "+title, width, a.screen.HeaderStyle())

	a.view.Render(a.screen, 0, 1, width, max(1, height-3))

	switch {
	case a.command.IsActive():
		a.command.Render(a.screen, height-2)
	case a.search.IsActive():
		a.search.Render(a.screen, height-2)
	}
	a.renderStatus(width, height-1)

	a.backupSelector.Render(a.screen)
	a.help.Render(a.screen)
	a.screen.Show()
}

func (a *App) renderStatus(width, y int) {
	mode := "-- NORMAL --"
	if a.view.IsEditing() {
		mode = "-- INSERT --"
	}
	x := a.screen.DrawString(0, y, mode, a.screen.StatusModeStyle())

	pos := fmt.Sprintf("%d,%d", a.view.CursorRow()+1, a.view.CursorCol()+1)
	if label := a.view.ColLabel(a.view.CursorCol()); label != "" {
		pos = label + " " + pos
	}
	if a.dirty {
		x += a.screen.DrawString(x, y, " (modified)", a.screen.StatusModifiedStyle())
	}
	if msg, ok := a.status.Current(statusTTL); ok {
		a.screen.DrawStringLimited(x+1, y, msg, width-x-len(pos)-2, a.screen.StatusMessageStyle())
	}
	a.screen.DrawString(width-len(pos), y, pos, a.screen.StatusMessageStyle())
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Size()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		a.handleKey(ev)
		if !a.splash.IsVisible() {
			a.updateDirty()
		}
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 || a.splash.IsVisible() {
		return
	}
	x, y := ev.Position()
	irow, icol, label, ok := a.view.CellAt(x, y)
	if !ok {
		return
	}
	if label {
		a.grid.OnLabelLeftClick(-1, icol)
		return
	}
	a.view.SaveEditControlValue()
	a.view.SetCursor(irow, icol)
	a.view.ClearSelection()
	a.grid.SaveClickLocation(irow, icol, datagrid.ClickLeft)
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.debugMode {
		log.Printf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers())
	}

	switch {
	case a.command.IsActive():
		if cmd, done := a.command.HandleKey(ev); done {
			a.handleCommand(cmd)
		}
		return
	case a.search.IsActive():
		if a.search.HandleKey(ev) {
			if row, ok := a.search.CurrentMatch(); ok {
				a.gotoRow(row)
			}
		}
		return
	case a.backupSelector.IsVisible():
		a.backupSelector.HandleKeyEvent(ev)
		return
	case a.help.IsVisible():
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Rune() == '?', ev.Rune() == 'q':
			a.help.Toggle()
		case ev.Rune() == 'j', ev.Key() == tcell.KeyDown:
			a.help.Scroll(1)
		case ev.Rune() == 'k', ev.Key() == tcell.KeyUp:
			a.help.Scroll(-1)
		}
		return
	case a.splash.IsVisible():
		if ev.Rune() == ':' {
			a.command.Start()
		}
		return
	case a.view.IsEditing():
		a.view.HandleKey(ev)
		return
	}

	a.handleNormalKey(ev)
}

// handleNormalKey handles a key when no editor, prompt or overlay is open.
func (a *App) handleNormalKey(ev *tcell.EventKey) {
	a.syncClick()
	// Shift-arrows extend the selection instead of moving it.
	if ev.Modifiers()&tcell.ModShift == 0 && a.grid.OnKeyDown(ev) {
		return
	}
	if a.view.HandleKey(ev) {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		a.view.ClearSelection()
		return
	case tcell.KeyEnter, tcell.KeyF2:
		a.beginEdit(false)
		return
	case tcell.KeyCtrlS:
		a.saveWithStatus()
		return
	case tcell.KeyDelete:
		a.grid.EraseSelection()
		return
	case tcell.KeyRune:
	default:
		return
	}

	if a.pendingKey != 0 {
		prefix := a.pendingKey
		a.pendingKey = 0
		if kb, ok := a.pendingBindings[prefix].Sequences[ev.Rune()]; ok {
			kb.Handler(a)
		}
		return
	}
	if _, ok := a.pendingBindings[ev.Rune()]; ok {
		a.pendingKey = ev.Rune()
		return
	}
	if kb, ok := a.keybindings[ev.Rune()]; ok {
		kb.Handler(a)
	}
}

// syncClick makes the cursor the location row and column operations
// without a selection act on.
func (a *App) syncClick() {
	a.grid.SaveClickLocation(a.view.CursorRow(), a.view.CursorCol(), datagrid.ClickLeft)
}

// beginEdit opens the cell editor on the cursor cell if it may be edited.
func (a *App) beginEdit(clear bool) {
	irow, icol := a.view.CursorRow(), a.view.CursorCol()
	if !a.grid.CanEditCell(irow, icol) {
		a.SetStatus("Cell is read-only")
		return
	}
	if clear {
		a.view.BeginEditWith("")
	} else {
		a.view.BeginEdit()
	}
}

// gotoRow moves the cursor to irow and scrolls to it.
func (a *App) gotoRow(irow int) {
	a.view.ClearSelection()
	a.view.SetCursor(irow, a.view.CursorCol())
	a.view.MakeCellVisible(irow, a.view.CursorCol())
}

// Save writes the grid to its file and records a backup.
func (a *App) Save() error {
	if a.store == nil {
		return fmt.Errorf("no file name, use :w <file>")
	}
	a.view.SaveEditControlValue()
	if err := a.store.Save(a.table); err != nil {
		return err
	}
	if a.backups != nil {
		if _, err := a.backups.CreateBackup(a.table, a.filePath, a.sessionID); err != nil {
			log.Printf("Failed to create backup: %v", err)
		}
	}
	a.savedSig = a.signature()
	a.dirty = false
	a.autoSaveTime = time.Now()
	return nil
}

func (a *App) saveWithStatus() {
	if err := a.Save(); err != nil {
		a.SetStatus("Failed to save: " + err.Error())
		return
	}
	a.SetStatus(fmt.Sprintf("Saved %s", a.filePath))
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.status.Add(msg)
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}
