package theme

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// HexToColor converts #RRGGBB or #RGB to a tcell color.
// Anything unparseable becomes tcell.ColorDefault.
func HexToColor(hexColor string) tcell.Color {
	hexColor = strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(hexColor) == 3 {
		hexColor = strings.Repeat(hexColor[0:1], 2) + strings.Repeat(hexColor[1:2], 2) + strings.Repeat(hexColor[2:3], 2)
	}
	if len(hexColor) != 6 {
		return tcell.ColorDefault
	}

	c, err := colorful.Hex("#" + hexColor)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// RGBToColor converts 0-255 components to a tcell color.
func RGBToColor(r, g, b int) tcell.Color {
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ColorToHex formats c as #rrggbb. Colors without an RGB value, such as
// tcell.ColorDefault, return "".
func ColorToHex(c tcell.Color) string {
	r, g, b := c.RGB()
	if r < 0 {
		return ""
	}
	cf := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return cf.Hex()
}

// ParseColorString accepts #RRGGBB, #RGB, rgb(r,g,b) or a tcell color name.
func ParseColorString(colorStr string) tcell.Color {
	colorStr = strings.TrimSpace(colorStr)

	switch {
	case strings.HasPrefix(colorStr, "#"):
		return HexToColor(colorStr)
	case strings.HasPrefix(colorStr, "rgb(") && strings.HasSuffix(colorStr, ")"):
		parts := strings.Split(colorStr[len("rgb("):len(colorStr)-1], ",")
		if len(parts) != 3 {
			return tcell.ColorDefault
		}
		var rgb [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return tcell.ColorDefault
			}
			rgb[i] = v
		}
		return RGBToColor(rgb[0], rgb[1], rgb[2])
	}

	if c, ok := tcell.ColorNames[strings.ToLower(colorStr)]; ok {
		return c
	}
	return tcell.ColorDefault
}

// Blend mixes a toward b by t in [0, 1] in Lab space. It is used to derive
// the selection tint of a cell from its background.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	if ar < 0 || br < 0 {
		return b
	}
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// ColorToStyle returns a style with c as foreground.
func ColorToStyle(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c)
}

// ColorPairToStyle returns a style with fg on bg.
func ColorPairToStyle(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}
