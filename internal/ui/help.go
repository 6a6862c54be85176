package ui

import "fmt"

// KeyBindingInfo is a keybinding as shown in the help overlay.
type KeyBindingInfo interface {
	GetKey() string
	GetDescription() string
}

// HelpScreen manages the help display
type HelpScreen struct {
	visible     bool
	keybindings []KeyBindingInfo
	commands    []KeyBindingInfo
	offset      int
}

// NewHelpScreen creates a new HelpScreen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{}
}

// SetKeybindings sets the keybindings to display
func (h *HelpScreen) SetKeybindings(keybindings []KeyBindingInfo) {
	h.keybindings = keybindings
}

// SetCommands sets the `:` commands to display
func (h *HelpScreen) SetCommands(commands []KeyBindingInfo) {
	h.commands = commands
}

// Toggle toggles the help screen visibility
func (h *HelpScreen) Toggle() {
	h.visible = !h.visible
	h.offset = 0
}

// IsVisible returns whether the help screen is visible
func (h *HelpScreen) IsVisible() bool {
	return h.visible
}

// Scroll moves the help text by n lines.
func (h *HelpScreen) Scroll(n int) {
	h.offset = max(0, min(h.offset+n, len(h.Lines())-1))
}

// Lines returns the help text.
func (h *HelpScreen) Lines() []string {
	result := []string{"Keybindings:", ""}
	for _, kb := range h.keybindings {
		result = append(result, fmt.Sprintf("  %-12s %s", kb.GetKey(), kb.GetDescription()))
	}
	if len(h.commands) > 0 {
		result = append(result, "", "Commands:", "")
		for _, c := range h.commands {
			result = append(result, fmt.Sprintf("  :%-11s %s", c.GetKey(), c.GetDescription()))
		}
	}
	return result
}

// Render renders the help screen
func (h *HelpScreen) Render(screen *Screen) {
	if !h.visible {
		return
	}

	contentStyle := screen.HelpStyle()
	borderStyle := screen.HelpBorderStyle()
	titleStyle := screen.HelpTitleStyle()

	width, height := screen.Size()
	for y := 0; y < height; y++ {
		screen.FillRow(0, y, width, contentStyle)
	}

	startX, startY := 4, 1
	boxWidth := width - 2*startX
	boxHeight := height - 2*startY
	if boxWidth < 10 || boxHeight < 5 {
		return
	}
	right := startX + boxWidth - 1
	bottom := startY + boxHeight - 1

	for x := startX + 1; x < right; x++ {
		screen.SetCell(x, startY, '─', borderStyle)
		screen.SetCell(x, startY+2, '─', borderStyle)
		screen.SetCell(x, bottom, '─', borderStyle)
	}
	for y := startY + 1; y < bottom; y++ {
		screen.SetCell(startX, y, '│', borderStyle)
		screen.SetCell(right, y, '│', borderStyle)
	}
	screen.SetCell(startX, startY, '┌', borderStyle)
	screen.SetCell(right, startY, '┐', borderStyle)
	screen.SetCell(startX, startY+2, '├', borderStyle)
	screen.SetCell(right, startY+2, '┤', borderStyle)
	screen.SetCell(startX, bottom, '└', borderStyle)
	screen.SetCell(right, bottom, '┘', borderStyle)

	screen.DrawString(startX+2, startY+1, " Help (? or Esc to close, j/k to scroll) ", titleStyle)

	lines := h.Lines()
	y := startY + 3
	for i := h.offset; i < len(lines) && y < bottom; i++ {
		screen.DrawStringLimited(startX+2, y, lines[i], boxWidth-4, contentStyle)
		y++
	}
}
