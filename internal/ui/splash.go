package ui

import "fmt"

// splashCommands are the commands listed on the splash screen.
var splashCommands = [][2]string{
	{":e <file>", "Open or create a grid"},
	{":import <file>", "Load a CSV, TSV or markdown table"},
	{":help", "Show keys and commands"},
	{":wq", "Save and quit"},
	{":q", "Quit (:q! discards changes)"},
}

// SplashScreen is shown in place of the grid until a file is opened.
type SplashScreen struct {
	visible bool
}

func NewSplashScreen() *SplashScreen {
	return &SplashScreen{}
}

func (s *SplashScreen) Show() { s.visible = true }

func (s *SplashScreen) Hide() { s.visible = false }

func (s *SplashScreen) IsVisible() bool { return s.visible }

// GetContent returns the splash text, one entry per line. The first line
// is the title and the last the hint; they are styled apart.
func (s *SplashScreen) GetContent() []string {
	lines := []string{
		"TUI Datagrid",
		"Version 1.0",
		"",
		"A terminal spreadsheet for typed, colored tables",
		"",
	}
	for _, c := range splashCommands {
		lines = append(lines, fmt.Sprintf("%-16s %s", c[0], c[1]))
	}
	return append(lines, "", "Type :e filename to get started")
}

// Render clears the screen and centers the splash text on it.
func (s *SplashScreen) Render(screen *Screen) {
	if !s.visible {
		return
	}
	width, height := screen.Size()
	for y := range height {
		screen.FillRow(0, y, width, DefaultStyle())
	}

	lines := s.GetContent()
	blockWidth := 0
	for _, l := range lines {
		blockWidth = max(blockWidth, StringWidth(l))
	}
	top := max(0, (height-len(lines))/2)
	left := max(0, (width-blockWidth)/2)

	for i, l := range lines {
		y := top + i
		if y >= height {
			break
		}
		style := screen.HeaderStyle()
		switch {
		case i == 0 || i == 1:
			// Title lines are centered on their own.
			screen.DrawString(max(0, (width-StringWidth(l))/2), y, l, style)
			continue
		case i == len(lines)-1:
			style = screen.StatusMessageStyle()
		}
		screen.DrawString(left, y, l, style)
	}
}
