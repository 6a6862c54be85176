package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHexToColor(t *testing.T) {
	if got := HexToColor("#fff"); got != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("HexToColor(#fff) = %v", got)
	}
	if got := HexToColor("#12345"); got != tcell.ColorDefault {
		t.Errorf("HexToColor(#12345) = %v, want default", got)
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in   string
		want tcell.Color
	}{
		{"#ff0000", tcell.NewRGBColor(255, 0, 0)},
		{"rgb(242, 242, 242)", tcell.NewRGBColor(242, 242, 242)},
		{"rgb(300, 0, 0)", tcell.ColorDefault},
		{"yellow", tcell.ColorYellow},
		{"nonsense", tcell.ColorDefault},
	}
	for _, tt := range tests {
		if got := ParseColorString(tt.in); got != tt.want {
			t.Errorf("ParseColorString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorToHex(t *testing.T) {
	if got := ColorToHex(RGBToColor(255, 230, 230)); got != "#ffe6e6" {
		t.Errorf("ColorToHex = %q", got)
	}
	if got := ColorToHex(tcell.ColorDefault); got != "" {
		t.Errorf("ColorToHex(default) = %q, want empty", got)
	}
}

func TestDefaultGridPalette(t *testing.T) {
	p := DefaultGridPalette()
	if ColorToHex(p.Pink) != "#ffe6e6" || ColorToHex(p.LightGray) != "#f2f2f2" || ColorToHex(p.Blue) != "#6464ff" {
		t.Errorf("unexpected palette %+v", p)
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	data := `name = "mine"
[colors]
grid_cursor = "#00ff00"
[grid]
pink = "rgb(255, 0, 0)"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile: %v", err)
	}
	if th.Name != "mine" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Colors.GridCursor != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("GridCursor = %v", th.Colors.GridCursor)
	}
	if th.Grid.Pink != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Pink = %v", th.Grid.Pink)
	}
	if th.Grid.LightGray != DefaultGridPalette().LightGray {
		t.Errorf("LightGray should keep its default")
	}
}

func TestLoadThemeRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[grid]\npurple = \"#000\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadThemeFromFile(path); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestBlend(t *testing.T) {
	white := RGBToColor(255, 255, 255)
	if got := Blend(white, white, 0.5); got != white {
		t.Errorf("Blend(white, white) = %v", got)
	}
	if got := Blend(tcell.ColorDefault, white, 0.5); got != white {
		t.Errorf("Blend with default = %v, want %v", got, white)
	}
}
