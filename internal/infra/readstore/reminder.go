package readstore

import (
	"context"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReminderReadStore struct {
	db db.DBTX
}

func NewReminderReadStore(dbtx db.DBTX) *ReminderReadStore {
	return &ReminderReadStore{db: dbtx}
}

func (r *ReminderReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.ScheduledReminderView, error) {
	query := `
		SELECT sr.id, sr.booking_id, b.phone, sr.message, sr.label, sr.send_at, sr.sent_at
		FROM scheduled_reminders sr
		JOIN bookings b ON b.id = sr.booking_id
		WHERE sr.booking_id = $1
		ORDER BY sr.send_at ASC`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled reminders for booking", err)
	}
	defer rows.Close()

	result := make([]*queries.ScheduledReminderView, 0, 4)
	for rows.Next() {
		var v queries.ScheduledReminderView
		err := rows.Scan(&v.ID, &v.BookingID, &v.Phone, &v.MessageText, &v.Label, &v.SendAt, &v.SentAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan scheduled reminder row", err)
		}
		result = append(result, &v)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate scheduled reminder rows", rows.Err())
	}

	return result, nil
}
