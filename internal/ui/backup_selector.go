package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-datagrid/internal/diff"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/storage"
)

// BackupLoader reads the grid stored in a backup.
type BackupLoader func(storage.BackupMetadata) (grid.DataSource, error)

// BackupSelectorWidget lists the backups of a file next to a diff preview
// of what restoring the selected one would change.
type BackupSelectorWidget struct {
	visible       bool
	backups       []storage.BackupMetadata // Newest first
	selectedIndex int
	scrollOffset  int
	height        int

	current  grid.DataSource
	load     BackupLoader
	callback func(backup storage.BackupMetadata)
	onCancel func()

	diffResults      map[int]*diff.DiffResult
	diffLines        []diff.DiffLine
	diffError        string
	diffScrollOffset int
}

// NewBackupSelectorWidget creates a new backup selector widget
func NewBackupSelectorWidget() *BackupSelectorWidget {
	return &BackupSelectorWidget{diffResults: make(map[int]*diff.DiffResult)}
}

// Show opens the selector. backups come oldest first, as FindBackupsForFile
// returns them, and are listed newest first.
func (bs *BackupSelectorWidget) Show(backups []storage.BackupMetadata, current grid.DataSource, load BackupLoader, callback func(storage.BackupMetadata), onCancel func()) {
	if len(backups) == 0 {
		return
	}
	bs.backups = make([]storage.BackupMetadata, len(backups))
	for i, b := range backups {
		bs.backups[len(backups)-1-i] = b
	}
	bs.current = current
	bs.load = load
	bs.callback = callback
	bs.onCancel = onCancel
	bs.selectedIndex = 0
	bs.scrollOffset = 0
	bs.diffResults = make(map[int]*diff.DiffResult)
	bs.visible = true
	bs.updateDiffPreview()
}

// Hide closes the backup selector
func (bs *BackupSelectorWidget) Hide() {
	bs.visible = false
}

// IsVisible returns whether the widget is currently visible
func (bs *BackupSelectorWidget) IsVisible() bool {
	return bs.visible
}

// Selected returns the highlighted backup.
func (bs *BackupSelectorWidget) Selected() (storage.BackupMetadata, bool) {
	if bs.selectedIndex < 0 || bs.selectedIndex >= len(bs.backups) {
		return storage.BackupMetadata{}, false
	}
	return bs.backups[bs.selectedIndex], true
}

// DiffLines returns the preview of the highlighted backup.
func (bs *BackupSelectorWidget) DiffLines() []diff.DiffLine {
	return bs.diffLines
}

func (bs *BackupSelectorWidget) updateDiffPreview() {
	bs.diffLines = nil
	bs.diffError = ""
	bs.diffScrollOffset = 0

	b, ok := bs.Selected()
	if !ok || bs.load == nil || bs.current == nil {
		return
	}
	result, ok := bs.diffResults[bs.selectedIndex]
	if !ok {
		backupGrid, err := bs.load(b)
		if err != nil {
			bs.diffError = err.Error()
			return
		}
		result = diff.ComputeDiff(bs.current, backupGrid)
		bs.diffResults[bs.selectedIndex] = result
	}
	bs.diffLines = diff.BuildDiffLines(result, false)
}

// HandleKeyEvent processes a key while the selector is open.
func (bs *BackupSelectorWidget) HandleKeyEvent(ev *tcell.EventKey) {
	if !bs.visible {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		bs.Hide()
		if bs.onCancel != nil {
			bs.onCancel()
		}
	case tcell.KeyUp:
		bs.move(-1)
	case tcell.KeyDown:
		bs.move(1)
	case tcell.KeyHome:
		bs.move(-len(bs.backups))
	case tcell.KeyEnd:
		bs.move(len(bs.backups))
	case tcell.KeyPgUp:
		bs.diffScrollOffset = max(0, bs.diffScrollOffset-bs.pageSize())
	case tcell.KeyPgDn:
		bs.diffScrollOffset = max(0, min(bs.diffScrollOffset+bs.pageSize(), len(bs.diffLines)-bs.pageSize()))
	case tcell.KeyEnter:
		if b, ok := bs.Selected(); ok {
			bs.Hide()
			if bs.callback != nil {
				bs.callback(b)
			}
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			bs.move(1)
		case 'k':
			bs.move(-1)
		case 'q':
			bs.Hide()
			if bs.onCancel != nil {
				bs.onCancel()
			}
		}
	}
}

func (bs *BackupSelectorWidget) pageSize() int {
	return max(1, (bs.height-6)/2)
}

func (bs *BackupSelectorWidget) move(n int) {
	idx := max(0, min(bs.selectedIndex+n, len(bs.backups)-1))
	if idx == bs.selectedIndex {
		return
	}
	bs.selectedIndex = idx
	rows := max(1, bs.height-8)
	if bs.selectedIndex < bs.scrollOffset {
		bs.scrollOffset = bs.selectedIndex
	} else if bs.selectedIndex >= bs.scrollOffset+rows {
		bs.scrollOffset = bs.selectedIndex - rows + 1
	}
	bs.updateDiffPreview()
}

// Render draws the list on the left half of the screen and the preview on
// the right.
func (bs *BackupSelectorWidget) Render(screen *Screen) {
	if !bs.visible {
		return
	}
	width, height := screen.Size()
	bs.height = height

	boxHeight := height - 4
	leftWidth := width / 2
	rightWidth := width - leftWidth
	if leftWidth < 20 || rightWidth < 20 || boxHeight < 5 {
		return
	}

	bs.renderPanel(screen, 1, 2, leftWidth-1, boxHeight,
		fmt.Sprintf(" Backups (%d) ", len(bs.backups)),
		"j/k: select | Enter: restore | Esc: cancel",
		bs.backupLines())

	title := " To get to "
	if b, ok := bs.Selected(); ok {
		title += b.Timestamp.Format("2006-01-02 15:04:05") + " "
	}
	bs.renderPanel(screen, leftWidth+1, 2, rightWidth-1, boxHeight, title, "PgUp/PgDn: scroll", bs.previewLines(screen))
}

type styledLine struct {
	text  string
	style tcell.Style
}

func (bs *BackupSelectorWidget) backupLines() []styledLine {
	var out []styledLine
	for i := bs.scrollOffset; i < len(bs.backups); i++ {
		b := bs.backups[i]
		text := fmt.Sprintf(" %s  %s", b.Timestamp.Format("2006-01-02 15:04:05"), b.SessionID)
		if r, ok := bs.diffResults[i]; ok {
			text += fmt.Sprintf("  ~%d +%d -%d", len(r.ModifiedRows), len(r.NewRows), len(r.DeletedRows))
		}
		style := tcell.StyleDefault
		if i == bs.selectedIndex {
			style = style.Reverse(true)
		}
		out = append(out, styledLine{text: text, style: style})
	}
	return out
}

func (bs *BackupSelectorWidget) previewLines(screen *Screen) []styledLine {
	switch {
	case bs.diffError != "":
		return []styledLine{{text: "error: " + bs.diffError, style: tcell.StyleDefault.Foreground(tcell.ColorRed)}}
	case len(bs.diffLines) == 0:
		return []styledLine{{text: "(no changes)"}}
	}
	var out []styledLine
	for _, l := range bs.diffLines[min(bs.diffScrollOffset, len(bs.diffLines)):] {
		out = append(out, styledLine{
			text:  strings.Repeat("  ", l.Indent) + l.Content,
			style: diffLineStyle(screen, l.Type),
		})
	}
	return out
}

func diffLineStyle(screen *Screen, t diff.DiffLineType) tcell.Style {
	base := screen.HelpStyle()
	switch t {
	case diff.DiffTypeNewSection, diff.DiffTypeNewItem:
		return base.Foreground(tcell.ColorGreen)
	case diff.DiffTypeDeletedSection, diff.DiffTypeDeletedItem:
		return base.Foreground(tcell.ColorRed)
	case diff.DiffTypeModifiedSection, diff.DiffTypeModifiedItem:
		return base.Foreground(tcell.ColorYellow)
	case diff.DiffTypeHeader, diff.DiffTypeSummary:
		return screen.HelpTitleStyle()
	}
	return base
}

func (bs *BackupSelectorWidget) renderPanel(screen *Screen, x, y, width, height int, title, footer string, lines []styledLine) {
	content := screen.HelpStyle()
	drawBox(screen, x, y, width, height, screen.HelpBorderStyle())
	screen.DrawStringLimited(x+1, y, title, width-2, screen.HelpTitleStyle())

	for i := 0; i < height-4; i++ {
		screen.FillRow(x+1, y+2+i, width-2, content)
		if i >= len(lines) {
			continue
		}
		st := lines[i].style
		if st == tcell.StyleDefault {
			st = content
		} else if _, bg, _ := st.Decompose(); bg == tcell.ColorDefault {
			_, cbg, _ := content.Decompose()
			st = st.Background(cbg)
		}
		screen.DrawStringLimited(x+1, y+2+i, lines[i].text, width-2, st)
	}
	screen.FillRow(x+1, y+height-1, width-2, content)
	screen.DrawStringLimited(x+1, y+height-1, footer, width-2, content)
}

// drawBox draws a single-line border.
func drawBox(screen *Screen, x, y, width, height int, style tcell.Style) {
	right, bottom := x+width-1, y+height-1
	for cx := x + 1; cx < right; cx++ {
		screen.SetCell(cx, y, '─', style)
		screen.SetCell(cx, bottom, '─', style)
	}
	for cy := y + 1; cy < bottom; cy++ {
		screen.SetCell(x, cy, '│', style)
		screen.SetCell(right, cy, '│', style)
	}
	screen.SetCell(x, y, '┌', style)
	screen.SetCell(right, y, '┐', style)
	screen.SetCell(x, bottom, '└', style)
	screen.SetCell(right, bottom, '┘', style)
}
