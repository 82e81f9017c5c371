//go:build unit

package reminder_test

import (
	"testing"
	"time"

	"cavilia/internal/domain/reminder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSimpleRule(t *testing.T, unit reminder.Unit, quantity int, active bool) *reminder.Rule {
	t.Helper()
	rule, err := reminder.NewSimpleRule(unit, quantity, active)
	require.NoError(t, err)
	return rule
}

func TestSchedule(t *testing.T) {
	appointmentAt := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("computes one reminder per active rule", func(t *testing.T) {
		rules := []*reminder.Rule{
			mustSimpleRule(t, reminder.UnitDay, 1, true),
			mustSimpleRule(t, reminder.UnitHour, 2, true),
		}
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		actual := reminder.Schedule(appointmentAt, rules, now)

		expected := []reminder.Scheduled{
			{RuleID: rules[0].ID(), SendAt: time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC), Label: "1 dia antes"},
			{RuleID: rules[1].ID(), SendAt: time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC), Label: "2 horas antes"},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("schedule mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("drops offsets already in the past", func(t *testing.T) {
		rules := []*reminder.Rule{mustSimpleRule(t, reminder.UnitHour, 1, true)}
		// send-at would be 14:00, now is already 14:30
		now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

		assert.Empty(t, reminder.Schedule(appointmentAt, rules, now))
	})

	t.Run("send-at exactly now is dropped", func(t *testing.T) {
		rules := []*reminder.Rule{mustSimpleRule(t, reminder.UnitHour, 1, true)}
		now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

		assert.Empty(t, reminder.Schedule(appointmentAt, rules, now))
	})

	t.Run("inactive rules are skipped", func(t *testing.T) {
		rules := []*reminder.Rule{
			mustSimpleRule(t, reminder.UnitDay, 1, false),
			mustSimpleRule(t, reminder.UnitHour, 2, true),
		}
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		actual := reminder.Schedule(appointmentAt, rules, now)
		require.Len(t, actual, 1)
		assert.Equal(t, rules[1].ID(), actual[0].RuleID)
	})

	t.Run("duplicate offsets both survive", func(t *testing.T) {
		rules := []*reminder.Rule{
			mustSimpleRule(t, reminder.UnitHour, 2, true),
			mustSimpleRule(t, reminder.UnitHour, 2, true),
		}
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		actual := reminder.Schedule(appointmentAt, rules, now)
		require.Len(t, actual, 2)
		assert.Equal(t, actual[0].SendAt, actual[1].SendAt)
		assert.NotEqual(t, actual[0].RuleID, actual[1].RuleID)
	})

	t.Run("rule order is preserved", func(t *testing.T) {
		rules := []*reminder.Rule{
			mustSimpleRule(t, reminder.UnitMinute, 30, true),
			mustSimpleRule(t, reminder.UnitDay, 1, true),
			mustSimpleRule(t, reminder.UnitHour, 2, true),
		}
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		actual := reminder.Schedule(appointmentAt, rules, now)
		require.Len(t, actual, 3)
		for i, rule := range rules {
			assert.Equal(t, rule.ID(), actual[i].RuleID)
		}
	})

	t.Run("no rules yields empty schedule", func(t *testing.T) {
		assert.Empty(t, reminder.Schedule(appointmentAt, nil, time.Time{}))
	})
}
