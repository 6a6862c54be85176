// Package validate holds the value checks used to flag cells whose text
// does not fit their column type.
package validate

import (
	"strconv"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// Default plausibility bounds for year and day columns.
const (
	DefaultMinYear = 1926
	DefaultMaxYear = 2050
	MinDay         = 1
	MaxDay         = 31
)

// monthNames are the accepted non-numeric month values, lower case.
// The empty string is included so a blank month is never flagged.
var monthNames = map[string]bool{
	"":    true,
	"jan": true, "january": true,
	"feb": true, "february": true,
	"mar": true, "march": true,
	"apr": true, "april": true,
	"may": true,
	"jun": true, "june": true,
	"jul": true, "july": true,
	"aug": true, "august": true,
	"sep": true, "sept": true, "september": true,
	"oct": true, "october": true,
	"nov": true, "november": true,
	"dec": true, "december": true,
	"fal": true, "fall": true, "autumn": true,
	"win": true, "winter": true,
	"spr": true, "spring": true,
	"sum": true, "summer": true,
}

// IsInt reports whether s, ignoring surrounding space, is a base-10 integer.
func IsInt(s string) bool {
	_, ok := toInt(s)
	return ok
}

func toInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

// IsNumeric reports whether s, ignoring surrounding space, is a number.
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// IsMonthName reports whether s names a month or a season.
func IsMonthName(s string) bool {
	return monthNames[strings.ToLower(strings.TrimSpace(s))]
}

// Set bundles the checks for every column type.
type Set struct {
	Date      DateMatcher
	DateRange DateMatcher
	MinYear   int
	MaxYear   int
}

// NewSet returns a Set with the default year bounds and date matchers
// built from formats.
func NewSet(formats []string) *Set {
	dates := NewStrftimeDates(formats)
	return &Set{
		Date:      dates,
		DateRange: NewDateRange(dates),
		MinYear:   DefaultMinYear,
		MaxYear:   DefaultMaxYear,
	}
}

// Valid reports whether val is acceptable for a column of type t.
// Plain string and URL columns accept anything.
func (s *Set) Valid(t schema.ColumnType, val string) bool {
	switch t {
	case schema.TypeInt:
		return val == "" || IsInt(val)
	case schema.TypeFloat:
		return val == "" || IsNumeric(val)
	case schema.TypeYear:
		if val == "" {
			return true
		}
		n, ok := toInt(val)
		return ok && n >= s.minYear() && n <= s.maxYear()
	case schema.TypeDay:
		if val == "" {
			return true
		}
		n, ok := toInt(val)
		return ok && n >= MinDay && n <= MaxDay
	case schema.TypeMonth:
		if n, ok := toInt(val); ok {
			return n >= 1 && n <= 12
		}
		return IsMonthName(val)
	case schema.TypeDate:
		return val == "" || s.Date == nil || s.Date.Match(val)
	case schema.TypeDateRange:
		return val == "" || s.DateRange == nil || s.DateRange.Match(val)
	case schema.TypeRequiredString:
		return val != ""
	}
	return true
}

func (s *Set) minYear() int {
	if s.MinYear == 0 {
		return DefaultMinYear
	}
	return s.MinYear
}

func (s *Set) maxYear() int {
	if s.MaxYear == 0 {
		return DefaultMaxYear
	}
	return s.MaxYear
}
