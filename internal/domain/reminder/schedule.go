package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Scheduled is one computed reminder instant for a booking. Records whose
// SendAt already passed are never produced.
type Scheduled struct {
	RuleID uuid.UUID
	SendAt time.Time
	Label  string
}

// Schedule computes the send-at instant for every rule against the
// appointment's start. Offsets landing at or before now are dropped. Output
// follows rule order and duplicate offsets are kept: two rules with the same
// offset each produce their own reminder.
func Schedule(appointmentAt time.Time, rules []*Rule, now time.Time) []Scheduled {
	result := make([]Scheduled, 0, len(rules))

	for _, rule := range rules {
		if !rule.Active() {
			continue
		}
		sendAt := rule.SendAtBefore(appointmentAt)
		if !sendAt.After(now) {
			continue
		}
		result = append(result, Scheduled{
			RuleID: rule.ID(),
			SendAt: sendAt,
			Label:  rule.Label(),
		})
	}

	return result
}
