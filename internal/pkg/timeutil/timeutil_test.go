//go:build unit

package timeutil_test

import (
	"testing"
	"time"

	"cavilia/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "plain minutes", input: "40 min", expected: 40},
		{name: "number only", input: "45", expected: 45},
		{name: "digits embedded in text", input: "aprox. 30 minutos", expected: 30},
		{name: "no digits falls back to default", input: "abc", expected: 30},
		{name: "empty string falls back to default", input: "", expected: 30},
		{name: "zero is clamped to one", input: "0 min", expected: 1},
		{name: "first digit run wins", input: "1h30", expected: 1},
		{name: "multi digit run", input: "120 min", expected: 120},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, timeutil.ParseDurationMinutes(tc.input))
		})
	}
}

func TestTimeToMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "morning time", input: "09:30", expected: 570},
		{name: "midnight", input: "00:00", expected: 0},
		{name: "missing minutes", input: "10", expected: 600},
		{name: "end of day", input: "23:59", expected: 1439},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, timeutil.TimeToMinutes(tc.input))
		})
	}
}

func TestDateKey(t *testing.T) {
	date := time.Date(2025, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2025-03-07", timeutil.DateKey(date))
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	combined := timeutil.CombineDateTime(date, "15:30")

	assert.Equal(t, 15, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
	assert.Equal(t, date.Year(), combined.Year())
	assert.Equal(t, date.Month(), combined.Month())
	assert.Equal(t, date.Day(), combined.Day())
}
