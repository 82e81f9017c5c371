//go:build unit

package booking_test

import (
	"testing"
	"time"

	"cavilia/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupied(timeOfDay, serviceName string, durationMin int, status booking.Status) booking.OccupiedSlot {
	return booking.OccupiedSlot{
		BookingID:   uuid.New(),
		Time:        timeOfDay,
		ServiceName: serviceName,
		DurationMin: durationMin,
		Status:      status,
	}
}

func TestSlotOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     booking.Slot
		expected bool
	}{
		{
			name:     "partial overlap",
			a:        booking.Slot{Start: 600, Duration: 40}, // 10:00-10:40
			b:        booking.Slot{Start: 630, Duration: 30}, // 10:30-11:00
			expected: true,
		},
		{
			name:     "touching end is not overlap",
			a:        booking.Slot{Start: 600, Duration: 30}, // 10:00-10:30
			b:        booking.Slot{Start: 630, Duration: 30}, // 10:30-11:00
			expected: false,
		},
		{
			name:     "contained slot",
			a:        booking.Slot{Start: 600, Duration: 60},
			b:        booking.Slot{Start: 615, Duration: 15},
			expected: true,
		},
		{
			name:     "identical slots",
			a:        booking.Slot{Start: 600, Duration: 30},
			b:        booking.Slot{Start: 600, Duration: 30},
			expected: true,
		},
		{
			name:     "disjoint",
			a:        booking.Slot{Start: 600, Duration: 30},
			b:        booking.Slot{Start: 720, Duration: 30},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("overlapping booking is reported", func(t *testing.T) {
		existing := []booking.OccupiedSlot{
			occupied("10:00", "Corte de Cabelo", 40, booking.StatusActive),
		}
		candidate := booking.Candidate{Date: date, Time: "10:30", DurationMin: 30}

		hit := booking.FindConflict(candidate, existing)
		require.NotNil(t, hit)
		assert.Equal(t, "10:00", hit.Time)
		assert.Equal(t, "Corte de Cabelo", hit.ServiceName)
	})

	t.Run("back to back bookings do not conflict", func(t *testing.T) {
		existing := []booking.OccupiedSlot{
			occupied("10:00", "Barba", 30, booking.StatusActive),
		}
		candidate := booking.Candidate{Date: date, Time: "10:30", DurationMin: 30}

		assert.Nil(t, booking.FindConflict(candidate, existing))
	})

	t.Run("cancelled booking frees its slot", func(t *testing.T) {
		existing := []booking.OccupiedSlot{
			occupied("10:00", "Corte de Cabelo", 40, booking.StatusCancelled),
		}
		candidate := booking.Candidate{Date: date, Time: "10:00", DurationMin: 40}

		assert.Nil(t, booking.FindConflict(candidate, existing))
	})

	t.Run("rescheduled booking still occupies its slot", func(t *testing.T) {
		existing := []booking.OccupiedSlot{
			occupied("10:00", "Corte de Cabelo", 40, booking.StatusRescheduled),
		}
		candidate := booking.Candidate{Date: date, Time: "10:00", DurationMin: 40}

		assert.NotNil(t, booking.FindConflict(candidate, existing))
	})

	t.Run("first overlapping slot wins", func(t *testing.T) {
		existing := []booking.OccupiedSlot{
			occupied("09:00", "Barba", 30, booking.StatusActive),
			occupied("10:00", "Corte de Cabelo", 40, booking.StatusActive),
			occupied("10:20", "Pezinho", 20, booking.StatusActive),
		}
		candidate := booking.Candidate{Date: date, Time: "10:30", DurationMin: 30}

		hit := booking.FindConflict(candidate, existing)
		require.NotNil(t, hit)
		assert.Equal(t, "10:00", hit.Time)
	})
}
