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

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const serviceViewColumns = `id, name, "desc", price, duration, created_at, updated_at`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	query := `SELECT ` + serviceViewColumns + ` FROM services WHERE id = $1`

	view, err := scanServiceView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	return view, nil
}

func (r *ServiceReadStore) FindByName(ctx context.Context, name string) (*queries.ServiceView, error) {
	query := `SELECT ` + serviceViewColumns + ` FROM services WHERE name = $1 LIMIT 1`

	view, err := scanServiceView(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by name", err)
	}

	return view, nil
}

func (r *ServiceReadStore) List(ctx context.Context) ([]*queries.ServiceView, error) {
	query := `SELECT ` + serviceViewColumns + ` FROM services ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	result := make([]*queries.ServiceView, 0, 8)
	for rows.Next() {
		view, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", rows.Err())
	}

	return result, nil
}

func scanServiceView(row pgx.Row) (*queries.ServiceView, error) {
	var v queries.ServiceView
	err := row.Scan(&v.ID, &v.Name, &v.Desc, &v.Price, &v.Duration, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
