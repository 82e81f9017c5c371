// Package timeutil holds the calendar and clock-string helpers shared by the
// booking and reminder subsystems. Every function is total: malformed input
// degrades to a safe default instead of returning an error, since service
// durations and clock times come from hand-entered or migrated data.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const defaultDurationMinutes = 30

// ParseDurationMinutes extracts the first run of digits from a display string
// like "40 min". No digits yields 30; anything below one minute is floored to 1.
func ParseDurationMinutes(text string) int {
	start := -1
	for i, r := range text {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return defaultDurationMinutes
	}

	end := start
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(text[start:end])
	if err != nil {
		return defaultDurationMinutes
	}
	if n < 1 {
		return 1
	}
	return n
}

// TimeToMinutes converts an "HH:MM" clock string to minutes since midnight.
// Missing or non-numeric parts count as zero.
func TimeToMinutes(clock string) int {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)

	hour := 0
	if len(parts) > 0 {
		if h, err := strconv.Atoi(parts[0]); err == nil {
			hour = h
		}
	}

	minute := 0
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil {
			minute = m
		}
	}

	return hour*60 + minute
}

// DateKey returns the canonical same-day grouping key "YYYY-MM-DD" using the
// date's local calendar fields.
func DateKey(date time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}

// CombineDateTime places an "HH:MM" clock string onto the calendar day of
// date, with zero seconds. This is the base instant reminders offset from.
func CombineDateTime(date time.Time, clock string) time.Time {
	total := TimeToMinutes(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), total/60, total%60, 0, 0, date.Location())
}
