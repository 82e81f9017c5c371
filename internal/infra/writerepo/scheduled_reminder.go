package writerepo

import (
	"context"
	"time"

	"cavilia/internal/domain/reminder"
	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduledReminderRepository struct{}

func NewScheduledReminderRepository() *ScheduledReminderRepository {
	return &ScheduledReminderRepository{}
}

// Single arbitrary key shared by every dispatch sweep; only one sweep runs at
// a time across all processes.
const sweepLockKey = "reminder_dispatch_sweep"

func (r *ScheduledReminderRepository) CreateBatch(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, message string, scheduled []reminder.Scheduled) error {
	query := `
		INSERT INTO scheduled_reminders (id, booking_id, rule_id, send_at, label, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`

	for _, s := range scheduled {
		_, err := tx.Exec(ctx, query, uuid.New(), bookingID, s.RuleID, s.SendAt, s.Label, message)
		if err != nil {
			return infra.WrapRepoErr("failed to insert scheduled reminder", err)
		}
	}
	return nil
}

// TryAcquireSweepLock returns false when another sweep already holds the lock;
// the caller should skip the run instead of waiting.
func (r *ScheduledReminderRepository) TryAcquireSweepLock(ctx context.Context, tx db.DBTX) (bool, error) {
	var acquired bool
	err := tx.QueryRow(ctx, `SELECT pg_try_advisory_xact_lock(hashtext($1))`, sweepLockKey).Scan(&acquired)
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire dispatch sweep lock", err)
	}
	return acquired, nil
}

// FindDueForUpdate locks and returns up to limit unsent reminders whose
// send-at has passed, skipping rows locked by a concurrent sweep.
func (r *ScheduledReminderRepository) FindDueForUpdate(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]*queries.DueReminderView, error) {
	query := `
		SELECT sr.id, sr.booking_id, b.phone, sr.message, sr.label, sr.send_at
		FROM scheduled_reminders sr
		JOIN bookings b ON b.id = sr.booking_id
		WHERE sr.sent_at IS NULL AND sr.send_at <= $1
		ORDER BY sr.send_at ASC
		LIMIT $2
		FOR UPDATE OF sr SKIP LOCKED`

	rows, err := tx.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select due reminders", err)
	}
	defer rows.Close()

	result := make([]*queries.DueReminderView, 0, limit)
	for rows.Next() {
		var v queries.DueReminderView
		if err := rows.Scan(&v.ID, &v.BookingID, &v.Phone, &v.MessageText, &v.Label, &v.SendAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan due reminder row", err)
		}
		result = append(result, &v)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate due reminder rows", rows.Err())
	}

	return result, nil
}

func (r *ScheduledReminderRepository) MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, sentAt time.Time) error {
	_, err := tx.Exec(ctx, `UPDATE scheduled_reminders SET sent_at = $2 WHERE id = $1`, id, sentAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder sent", err)
	}
	return nil
}

// DeleteUnsentByBooking clears pending reminders before a reschedule
// recompute; already-sent rows stay as history.
func (r *ScheduledReminderRepository) DeleteUnsentByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error {
	_, err := tx.Exec(ctx, `DELETE FROM scheduled_reminders WHERE booking_id = $1 AND sent_at IS NULL`, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete unsent reminders", err)
	}
	return nil
}
