package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig is the raw TOML form of a theme file. Color values may be
// #RRGGBB, #RGB, rgb(r,g,b) or a color name; missing keys keep the base
// theme's value.
type ThemeConfig struct {
	Name   string            `toml:"name"`
	Colors map[string]string `toml:"colors"`
	Grid   map[string]string `toml:"grid"`
}

// colorFields maps TOML keys of the [colors] table to their fields.
func (c *Colors) colorFields() map[string]*tcell.Color {
	return map[string]*tcell.Color{
		"grid_label":      &c.GridLabel,
		"grid_label_text": &c.GridLabelText,
		"grid_cursor":     &c.GridCursor,
		"grid_selection":  &c.GridSelection,
		"grid_row_number": &c.GridRowNumber,
		"grid_separator":  &c.GridSeparator,
		"editor_text":     &c.EditorText,
		"editor_cursor":   &c.EditorCursor,
		"command_prompt":  &c.CommandPrompt,
		"command_text":    &c.CommandText,
		"command_cursor":  &c.CommandCursor,
		"help_background": &c.HelpBackground,
		"help_border":     &c.HelpBorder,
		"help_title":      &c.HelpTitle,
		"help_content":    &c.HelpContent,
		"status_mode":     &c.StatusMode,
		"status_message":  &c.StatusMessage,
		"status_modified": &c.StatusModified,
		"header_title":    &c.HeaderTitle,
	}
}

// colorFields maps TOML keys of the [grid] table to their fields.
func (p *GridPalette) colorFields() map[string]*tcell.Color {
	return map[string]*tcell.Color{
		"white":       &p.White,
		"black":       &p.Black,
		"light_gray":  &p.LightGray,
		"pink":        &p.Pink,
		"blue":        &p.Blue,
		"label_gray":  &p.LabelGray,
		"light_green": &p.LightGreen,
		"light_blue":  &p.LightBlue,
	}
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".config", "tui-datagrid", "themes"),
		filepath.Join(home, ".local", "share", "tui-datagrid", "themes"),
	}
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config)
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme applies config on top of Tokyo Night. Unknown keys are
// reported so typos in theme files do not go unnoticed.
func configToTheme(config ThemeConfig) (*Theme, error) {
	t := TokyoNight()

	if err := override(t.Colors.colorFields(), config.Colors, "colors"); err != nil {
		return nil, err
	}
	if err := override(t.Grid.colorFields(), config.Grid, "grid"); err != nil {
		return nil, err
	}

	if config.Name != "" {
		t.Name = config.Name
	}
	return t, nil
}

func override(fields map[string]*tcell.Color, values map[string]string, table string) error {
	for key, val := range values {
		field, ok := fields[key]
		if !ok {
			return fmt.Errorf("unknown key %q in [%s]", key, table)
		}
		if val != "" {
			*field = ParseColorString(val)
		}
	}
	return nil
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	switch themeName {
	case "default":
		return Default()
	case "", "tokyo-night":
		return TokyoNight()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}

	return theme
}
