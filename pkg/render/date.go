package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
)

// DateFormatter turns date-like values into human readable strings
type DateFormatter struct {
	layout string
	loc    *time.Location
	now    func() time.Time
}

// NewDateFormatter makes formatter for the given layout and timezone name.
// Unknown timezone falls back to UTC.
func NewDateFormatter(layout, timezone string) *DateFormatter {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	if layout == "" {
		layout = "Jan 2, 2006, 3:04 PM"
	}
	return &DateFormatter{layout: layout, loc: loc, now: time.Now}
}

// Parse parses any date-like value, in formatter's timezone
func (f *DateFormatter) Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := dateparse.ParseIn(value, f.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t.In(f.loc), nil
}

// Format returns medium-date/short-time representation of the value.
// Never fails, unparsable value returned as-is, empty value gives empty string.
func (f *DateFormatter) Format(value string) string {
	t, err := f.Parse(value)
	if err != nil {
		return value
	}
	return t.Format(f.layout)
}

// Relative returns humanized distance to now, i.e. "3 hours ago", empty if unparsable
func (f *DateFormatter) Relative(value string) string {
	t, err := f.Parse(value)
	if err != nil {
		return ""
	}
	return humanize.RelTime(t, f.now(), "ago", "from now")
}
