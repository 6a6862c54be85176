package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell text is measured in terminal columns, not bytes: CJK and emoji take
// two columns, combining marks none.

// RuneWidth returns the display width of r. Control and combining
// characters count as zero.
func RuneWidth(r rune) int {
	return max(runewidth.RuneWidth(r), 0)
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth cuts s so it fits in maxWidth columns without splitting
// a rune.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// TruncateToWidthWithEllipsis cuts s to maxWidth columns and marks the cut
// with "…". Widths of one column or less are cut without the mark.
func TruncateToWidthWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 1 {
		return TruncateToWidth(s, maxWidth)
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadStringToWidth pads s with spaces on the right up to width columns.
// Wider strings are returned unchanged.
func PadStringToWidth(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// FitCell returns s cut or padded to exactly width columns, as drawn in a
// grid cell. Newlines are shown as spaces.
func FitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(s)
	return runewidth.FillRight(TruncateToWidthWithEllipsis(s, width), width)
}

// FindRuneIndexAtWidth returns the byte index of the first rune that starts
// at or after column targetWidth.
func FindRuneIndexAtWidth(s string, targetWidth int) int {
	if targetWidth <= 0 {
		return 0
	}
	width := 0
	for i, r := range s {
		if width >= targetWidth {
			return i
		}
		width += RuneWidth(r)
	}
	return len(s)
}
