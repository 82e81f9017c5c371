package readstore

import (
	"context"
	"errors"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewColumns = `
	b.id, b.service_id, s.name, s.price, s.duration,
	b.date, b.time, b.client_name, b.phone, b.status,
	b.created_at, b.updated_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.id = $1`

	view, err := scanBookingView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (r *BookingReadStore) List(ctx context.Context) ([]*queries.BookingView, error) {
	query := `SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		ORDER BY b.date ASC, b.time ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingView, 0, 32)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", rows.Err())
	}

	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.ServiceID, &v.ServiceName, &v.Price, &v.Duration,
		&v.Date, &v.Time, &v.ClientName, &v.Phone, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
