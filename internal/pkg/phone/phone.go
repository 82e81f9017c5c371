// Package phone normalizes client phone numbers. The normalized form is the
// identity key shared by bookings, the client registry and push subscriptions.
package phone

import "strings"

// Normalize strips every non-digit and drops a leading Brazilian country code
// when the number is long enough to carry one. Idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) >= 12 && strings.HasPrefix(digits, "55") {
		return digits[2:]
	}
	return digits
}
