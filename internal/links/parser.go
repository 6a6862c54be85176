// Package links finds link targets in cell text.
package links

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
)

// Link is a reference found in a cell.
type Link struct {
	Target      string // File path or URL
	DisplayText string // Label given after '|', if any
	StartPos    int    // Start position in original text (inclusive)
	EndPos      int    // End position in original text (exclusive)
}

var (
	linkPattern = regexp.MustCompile(`\[\[([^\]\|]+)(?:\|([^\]]+))?\]\]`)
	urlPattern  = regexp.MustCompile(`https?://[^\s\]|]+`)
)

// ParseLinks extracts links from text in order of appearance. It accepts
// [[target]], [[target|label]] and bare http(s) URLs.
func ParseLinks(text string) []Link {
	var out []Link
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		l := Link{
			Target:   strings.TrimSpace(text[m[2]:m[3]]),
			StartPos: m[0],
			EndPos:   m[1],
		}
		if m[4] != -1 {
			l.DisplayText = strings.TrimSpace(text[m[4]:m[5]])
		}
		out = append(out, l)
	}

	for _, m := range urlPattern.FindAllStringIndex(text, -1) {
		if inside(out, m[0]) {
			continue
		}
		out = append(out, Link{Target: text[m[0]:m[1]], StartPos: m[0], EndPos: m[1]})
	}

	// Keep document order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].StartPos < out[j-1].StartPos; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func inside(ls []Link, pos int) bool {
	for i := range ls {
		if ls[i].ContainsPosition(pos) {
			return true
		}
	}
	return false
}

// RowLinks returns the links in every cell of r, left to right.
func RowLinks(r grid.Row) []Link {
	var out []Link
	for _, c := range r.Cells() {
		out = append(out, ParseLinks(c)...)
	}
	return out
}

// GetDisplayText returns the text that should be shown for this link
// If DisplayText is set, returns that; otherwise returns the target
func (l *Link) GetDisplayText() string {
	if l.DisplayText != "" {
		return l.DisplayText
	}
	return l.Target
}

// ContainsPosition checks if a text position falls within this link
func (l *Link) ContainsPosition(pos int) bool {
	return pos >= l.StartPos && pos < l.EndPos
}

// IsURL reports whether the target is an absolute http(s) URL rather than
// a file.
func (l *Link) IsURL() bool {
	u, err := url.Parse(l.Target)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
