package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds the colors of the screen chrome around the grid.
type Colors struct {
	// Grid chrome
	GridLabel     tcell.Color
	GridLabelText tcell.Color
	GridCursor    tcell.Color
	GridSelection tcell.Color
	GridRowNumber tcell.Color
	GridSeparator tcell.Color

	// Editor colors
	EditorText   tcell.Color
	EditorCursor tcell.Color

	// Command line colors
	CommandPrompt tcell.Color
	CommandText   tcell.Color
	CommandCursor tcell.Color

	// Help overlay colors
	HelpBackground tcell.Color
	HelpBorder     tcell.Color
	HelpTitle      tcell.Color
	HelpContent    tcell.Color

	// Status line colors
	StatusMode     tcell.Color
	StatusMessage  tcell.Color
	StatusModified tcell.Color

	HeaderTitle tcell.Color
}

// GridPalette holds the cell colors used when coloring cells by value.
type GridPalette struct {
	White      tcell.Color
	Black      tcell.Color
	LightGray  tcell.Color
	Pink       tcell.Color
	Blue       tcell.Color
	LabelGray  tcell.Color
	LightGreen tcell.Color
	LightBlue  tcell.Color
}

// DefaultGridPalette returns the light palette cells are normally drawn in.
func DefaultGridPalette() GridPalette {
	return GridPalette{
		White:      RGBToColor(255, 255, 255),
		Black:      RGBToColor(0, 0, 0),
		LightGray:  RGBToColor(242, 242, 242),
		Pink:       RGBToColor(255, 230, 230),
		Blue:       RGBToColor(100, 100, 255),
		LabelGray:  RGBToColor(230, 230, 230),
		LightGreen: RGBToColor(240, 255, 240),
		LightBlue:  RGBToColor(240, 230, 255),
	}
}

// Theme is a complete color theme.
type Theme struct {
	Name   string
	Colors Colors
	Grid   GridPalette
}

// Default returns a theme that leaves the chrome in terminal defaults.
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			GridLabel:      tcell.ColorDefault,
			GridLabelText:  tcell.ColorDefault,
			GridCursor:     tcell.ColorYellow,
			GridSelection:  tcell.ColorTeal,
			GridRowNumber:  tcell.ColorDefault,
			GridSeparator:  tcell.ColorGray,
			EditorText:     tcell.ColorDefault,
			EditorCursor:   tcell.ColorDefault,
			CommandPrompt:  tcell.ColorDefault,
			CommandText:    tcell.ColorDefault,
			CommandCursor:  tcell.ColorDefault,
			HelpBackground: tcell.ColorDefault,
			HelpBorder:     tcell.ColorDefault,
			HelpTitle:      tcell.ColorDefault,
			HelpContent:    tcell.ColorDefault,
			StatusMode:     tcell.ColorDefault,
			StatusMessage:  tcell.ColorDefault,
			StatusModified: tcell.ColorDefault,
			HeaderTitle:    tcell.ColorDefault,
		},
		Grid: DefaultGridPalette(),
	}
}

// TokyoNight returns the Tokyo Night theme.
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			GridLabel:      HexToColor("#24283b"), // Storm background
			GridLabelText:  HexToColor("#bb9af7"), // Magenta
			GridCursor:     HexToColor("#e0af68"), // Yellow
			GridSelection:  HexToColor("#7aa2f7"), // Blue
			GridRowNumber:  HexToColor("#565f89"), // Comment gray
			GridSeparator:  HexToColor("#3b4261"),
			EditorText:     HexToColor("#c0caf5"),
			EditorCursor:   HexToColor("#7aa2f7"),
			CommandPrompt:  HexToColor("#bb9af7"),
			CommandText:    HexToColor("#c0caf5"),
			CommandCursor:  HexToColor("#7aa2f7"),
			HelpBackground: HexToColor("#1a1b26"),
			HelpBorder:     HexToColor("#7dcfff"), // Cyan
			HelpTitle:      HexToColor("#bb9af7"),
			HelpContent:    HexToColor("#c0caf5"),
			StatusMode:     HexToColor("#bb9af7"),
			StatusMessage:  HexToColor("#9ece6a"), // Green
			StatusModified: HexToColor("#f7768e"), // Red
			HeaderTitle:    HexToColor("#bb9af7"),
		},
		Grid: DefaultGridPalette(),
	}
}
