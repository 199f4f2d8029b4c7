// Package dates formats and parses calendar-date strings (YYYY-MM-DD) using
// the local timezone's wall-clock date. Parsing a plain date string as UTC
// and rendering it in a negative-offset timezone shows the previous calendar
// day; these helpers exist specifically to prevent that defect.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical calendar-date format.
const Layout = "2006-01-02"

// LocalDate formats the instant t as the local timezone's YYYY-MM-DD,
// whatever zone t itself carries.
func LocalDate(t time.Time) string {
	return t.In(time.Local).Format(Layout)
}

// Today returns the current local calendar date.
func Today() string {
	return LocalDate(time.Now())
}

// ParseLocalDate reconstructs local midnight from a YYYY-MM-DD string.
// Timestamp-like inputs are tolerated by splitting on "T" first.
func ParseLocalDate(s string) (time.Time, error) {
	day, _, _ := strings.Cut(strings.TrimSpace(s), "T")
	t, err := time.ParseInLocation(Layout, day, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates: parse %q: %w", s, err)
	}
	return t, nil
}
