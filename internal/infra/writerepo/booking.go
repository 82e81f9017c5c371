package writerepo

import (
	"context"
	"errors"
	"time"

	"cavilia/internal/domain/booking"
	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/phone"
	"cavilia/internal/pkg/timeutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// AcquireDateLock serializes booking creation per calendar day. The lock is
// held until the surrounding transaction ends.
func (r *BookingRepository) AcquireDateLock(ctx context.Context, tx db.DBTX, dateKey string) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, dateKey)
	if err != nil {
		return infra.WrapRepoErr("failed to acquire booking date lock", err)
	}
	return nil
}

// FindOccupiedByDate returns every booking on the given day, regardless of
// status; the conflict detector decides which ones count.
func (r *BookingRepository) FindOccupiedByDate(ctx context.Context, tx db.DBTX, dateKey string) ([]booking.OccupiedSlot, error) {
	query := `
		SELECT b.id, b.time, s.name, s.duration, b.status
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE to_char(b.date, 'YYYY-MM-DD') = $1
		ORDER BY b.time ASC`

	rows, err := tx.Query(ctx, query, dateKey)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}
	defer rows.Close()

	slots := make([]booking.OccupiedSlot, 0, 8)
	for rows.Next() {
		var (
			id          uuid.UUID
			timeOfDay   string
			serviceName string
			duration    string
			status      string
		)
		if err := rows.Scan(&id, &timeOfDay, &serviceName, &duration, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot row", err)
		}
		slots = append(slots, booking.OccupiedSlot{
			BookingID:   id,
			Time:        timeOfDay,
			ServiceName: serviceName,
			DurationMin: timeutil.ParseDurationMinutes(duration),
			Status:      booking.Status(status),
		})
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied slot rows", rows.Err())
	}

	return slots, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, service_id, date, time, client_name, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

	_, err := tx.Exec(ctx, query,
		b.ID(), b.ServiceID(), b.Date(), b.Time(), b.ClientName(), phone.Normalize(b.Phone()), string(b.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	query := `
		SELECT id, service_id, date, time, client_name, phone, status, created_at, updated_at
		FROM bookings WHERE id = $1`

	var (
		bID, serviceID                uuid.UUID
		date, createdAt, updatedAt    time.Time
		timeOfDay, clientName, number string
		status                        string
	)
	err := tx.QueryRow(ctx, query, id).Scan(&bID, &serviceID, &date, &timeOfDay, &clientName, &number, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return booking.ReconstructBooking(bID, serviceID, date, timeOfDay, clientName, number, booking.Status(status), createdAt, updatedAt), nil
}

// UpdateSchedule moves a booking to a new date/time and flips its status. The
// caller decides whether that status is "rescheduled".
func (r *BookingRepository) UpdateSchedule(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	query := `
		UPDATE bookings
		SET service_id = $2, date = $3, time = $4, client_name = $5, phone = $6, status = $7, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		b.ID(), b.ServiceID(), b.Date(), b.Time(), b.ClientName(), phone.Normalize(b.Phone()), string(b.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found for update", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found for status update", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found for delete", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
