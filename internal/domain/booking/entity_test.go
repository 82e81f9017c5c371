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

func TestNewBooking(t *testing.T) {
	serviceID := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := booking.NewBooking(serviceID, date, "15:00", "João Silva", "11999999999")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusActive, actual.Status())
		assert.Equal(t, "2025-06-10", actual.DateKey())
		assert.Equal(t, 15, actual.StartsAt().Hour())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name       string
			timeOfDay  string
			clientName string
			phone      string
			date       time.Time
			errIs      error
		}{
			{name: "empty client name", timeOfDay: "15:00", clientName: "  ", phone: "11999999999", date: date, errIs: booking.ErrEmptyClientName},
			{name: "empty phone", timeOfDay: "15:00", clientName: "João", phone: "", date: date, errIs: booking.ErrEmptyPhone},
			{name: "phone with no digits", timeOfDay: "15:00", clientName: "João", phone: "abc", date: date, errIs: booking.ErrEmptyPhone},
			{name: "empty time", timeOfDay: " ", clientName: "João", phone: "11999999999", date: date, errIs: booking.ErrEmptyTime},
			{name: "zero date", timeOfDay: "15:00", clientName: "João", phone: "11999999999", date: time.Time{}, errIs: booking.ErrZeroDate},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.NewBooking(serviceID, tc.date, tc.timeOfDay, tc.clientName, tc.phone)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
