package booking

import (
	"time"

	"cavilia/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// Slot is a half-open interval [Start, Start+Duration) in minutes since
// midnight. Touching endpoints do not overlap: a 10:00-10:30 cut does not
// collide with a 10:30 appointment.
type Slot struct {
	Start    int
	Duration int
}

func NewSlot(timeOfDay string, durationMinutes int) Slot {
	if durationMinutes < 1 {
		durationMinutes = 1
	}
	return Slot{
		Start:    timeutil.TimeToMinutes(timeOfDay),
		Duration: durationMinutes,
	}
}

func (s Slot) End() int {
	return s.Start + s.Duration
}

func (s Slot) Overlaps(other Slot) bool {
	return s.Start < other.End() && other.Start < s.End()
}

// OccupiedSlot is an existing booking's claim on the calendar day, carrying
// just enough to build a human-readable conflict message.
type OccupiedSlot struct {
	BookingID   uuid.UUID
	Time        string
	ServiceName string
	DurationMin int
	Status      Status
}

// Candidate is the booking being validated.
type Candidate struct {
	Date        time.Time
	Time        string
	DurationMin int
}

// FindConflict returns the first occupied slot on the candidate's day that
// overlaps it, or nil. Cancelled bookings never conflict.
func FindConflict(candidate Candidate, existing []OccupiedSlot) *OccupiedSlot {
	slot := NewSlot(candidate.Time, candidate.DurationMin)

	for i := range existing {
		if !existing[i].Status.CountsForConflict() {
			continue
		}
		if slot.Overlaps(NewSlot(existing[i].Time, existing[i].DurationMin)) {
			return &existing[i]
		}
	}
	return nil
}
