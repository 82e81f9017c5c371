package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context) ([]*BookingView, error)
}

type ReminderReader interface {
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*ScheduledReminderView, error)
}

type BookingQueries struct {
	bookings  BookingReader
	reminders ReminderReader
}

func NewBookingQueries(bookings BookingReader, reminders ReminderReader) *BookingQueries {
	return &BookingQueries{bookings: bookings, reminders: reminders}
}

func (q *BookingQueries) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.bookings.FindByID(ctx, id)
}

func (q *BookingQueries) ListBookings(ctx context.Context) ([]*BookingView, error) {
	return q.bookings.List(ctx)
}

// ListReminders shows a booking's reminder trail: what is queued and what
// already went out.
func (q *BookingQueries) ListReminders(ctx context.Context, bookingID uuid.UUID) ([]*ScheduledReminderView, error) {
	return q.reminders.ListByBooking(ctx, bookingID)
}
