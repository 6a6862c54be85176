package validate

import (
	"strings"

	"github.com/ncruces/go-strftime"
)

// DateMatcher recognises date-like text.
type DateMatcher interface {
	Match(s string) bool
}

// DefaultDateFormats are the strftime layouts tried when none are configured.
var DefaultDateFormats = []string{
	"%Y-%m-%d",
	"%d %B %Y",
	"%d %b %Y",
	"%B %d, %Y",
	"%b %d, %Y",
	"%B %Y",
	"%b %Y",
	"%Y",
}

// StrftimeDates matches text against a list of strftime layouts.
type StrftimeDates struct {
	Formats []string
}

// NewStrftimeDates returns a matcher for formats, or for
// DefaultDateFormats when formats is empty.
func NewStrftimeDates(formats []string) *StrftimeDates {
	if len(formats) == 0 {
		formats = DefaultDateFormats
	}
	return &StrftimeDates{Formats: formats}
}

// Match reports whether s parses with any of the layouts.
func (d *StrftimeDates) Match(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, f := range d.Formats {
		if _, err := strftime.Parse(f, s); err == nil {
			return true
		}
	}
	return false
}

// rangeSeparators split the two ends of a date range.
var rangeSeparators = []string{"-", "–", " to ", " through "}

// DateRange matches a single date or two dates joined by a separator.
type DateRange struct {
	Date DateMatcher
}

// NewDateRange returns a range matcher whose ends are checked by date.
func NewDateRange(date DateMatcher) *DateRange {
	return &DateRange{Date: date}
}

// Match reports whether s is a date or a date range. Every occurrence of
// every separator is tried, so ISO dates such as 1990-01-02 split correctly.
func (r *DateRange) Match(s string) bool {
	s = strings.TrimSpace(s)
	if r.Date.Match(s) {
		return true
	}
	for _, sep := range rangeSeparators {
		for off := 0; ; {
			i := strings.Index(s[off:], sep)
			if i < 0 {
				break
			}
			at := off + i
			if r.Date.Match(s[:at]) && r.Date.Match(s[at+len(sep):]) {
				return true
			}
			off = at + len(sep)
		}
	}
	return false
}
