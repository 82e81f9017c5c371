//go:build unit

package reminder_test

import (
	"testing"
	"time"

	"cavilia/internal/domain/reminder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimpleRule(t *testing.T) {
	testCases := []struct {
		name     string
		unit     reminder.Unit
		quantity int
		errIs    error
	}{
		{name: "one day before", unit: reminder.UnitDay, quantity: 1},
		{name: "two hours before", unit: reminder.UnitHour, quantity: 2},
		{name: "thirty minutes before", unit: reminder.UnitMinute, quantity: 30},
		{name: "invalid unit", unit: reminder.Unit("week"), quantity: 1, errIs: reminder.ErrInvalidUnit},
		{name: "zero quantity", unit: reminder.UnitDay, quantity: 0, errIs: reminder.ErrInvalidQuantity},
		{name: "negative quantity", unit: reminder.UnitHour, quantity: -1, errIs: reminder.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := reminder.NewSimpleRule(tc.unit, tc.quantity, true)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.False(t, rule.IsComposite())
		})
	}
}

func TestNewCompositeRule(t *testing.T) {
	testCases := []struct {
		name                 string
		days, hours, minutes int
		errIs                error
	}{
		{name: "days and hours", days: 2, hours: 3},
		{name: "minutes only", minutes: 45},
		{name: "all zero", errIs: reminder.ErrEmptyOffset},
		{name: "negative component", days: 1, hours: -2, errIs: reminder.ErrNegativeOffset},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := reminder.NewCompositeRule(tc.days, tc.hours, tc.minutes, true)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, rule.IsComposite())
		})
	}
}

func TestSendAtBefore(t *testing.T) {
	base := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("simple units", func(t *testing.T) {
		day, err := reminder.NewSimpleRule(reminder.UnitDay, 1, true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC), day.SendAtBefore(base))

		hour, err := reminder.NewSimpleRule(reminder.UnitHour, 2, true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC), hour.SendAtBefore(base))

		minute, err := reminder.NewSimpleRule(reminder.UnitMinute, 30, true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC), minute.SendAtBefore(base))
	})

	t.Run("composite subtracts days then hours then minutes", func(t *testing.T) {
		rule, err := reminder.NewCompositeRule(2, 3, 15, true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 8, 11, 45, 0, 0, time.UTC), rule.SendAtBefore(base))
	})

	t.Run("day subtraction crosses month boundary", func(t *testing.T) {
		rule, err := reminder.NewCompositeRule(2, 0, 0, true)
		require.NoError(t, err)

		marchFirst := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 2, 27, 9, 0, 0, 0, time.UTC), rule.SendAtBefore(marchFirst))
	})

	t.Run("day subtraction crosses year boundary", func(t *testing.T) {
		rule, err := reminder.NewSimpleRule(reminder.UnitDay, 1, true)
		require.NoError(t, err)

		newYear := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC), rule.SendAtBefore(newYear))
	})
}

func TestLabel(t *testing.T) {
	testCases := []struct {
		name     string
		build    func() (*reminder.Rule, error)
		expected string
	}{
		{
			name:     "singular day",
			build:    func() (*reminder.Rule, error) { return reminder.NewSimpleRule(reminder.UnitDay, 1, true) },
			expected: "1 dia antes",
		},
		{
			name:     "plural hours",
			build:    func() (*reminder.Rule, error) { return reminder.NewSimpleRule(reminder.UnitHour, 2, true) },
			expected: "2 horas antes",
		},
		{
			name:     "plural minutes",
			build:    func() (*reminder.Rule, error) { return reminder.NewSimpleRule(reminder.UnitMinute, 30, true) },
			expected: "30 minutos antes",
		},
		{
			name:     "composite with days and hours",
			build:    func() (*reminder.Rule, error) { return reminder.NewCompositeRule(2, 3, 0, true) },
			expected: "2 dias, 3 horas antes",
		},
		{
			name:     "composite skips zero components",
			build:    func() (*reminder.Rule, error) { return reminder.NewCompositeRule(1, 0, 30, true) },
			expected: "1 dia, 30 minutos antes",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := tc.build()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rule.Label())
		})
	}
}
