package template

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultDateFormat is used when a date expression names no layout.
const DefaultDateFormat = "%Y-%m-%d"

// DateValue is used to pass dates through the pipe chain
type DateValue struct {
	t time.Time
}

// FormatDateValue formats dv with a strftime layout.
func FormatDateValue(dv *DateValue, format string) string {
	if format == "" {
		format = DefaultDateFormat
	}
	return strftime.Format(format, dv.t)
}

// WeekdayWithStart returns day in the week containing now, where weeks
// begin on weekStart. With Monday weeks, weekday(0) is the Sunday after now.
func WeekdayWithStart(now time.Time, day, weekStart time.Weekday) *DateValue {
	toStart := (int(now.Weekday()) - int(weekStart) + 7) % 7
	start := now.AddDate(0, 0, -toStart)
	toDay := (int(day) - int(weekStart) + 7) % 7
	return &DateValue{t: start.AddDate(0, 0, toDay)}
}
