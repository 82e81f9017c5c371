package readstore

import (
	"context"
	"errors"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/phone"
	"cavilia/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(dbtx db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: dbtx}
}

func (r *ClientReadStore) FindByPhone(ctx context.Context, rawPhone string) (*queries.ClientView, error) {
	query := `SELECT phone, name, created_at FROM clients WHERE phone = $1`

	var v queries.ClientView
	err := r.db.QueryRow(ctx, query, phone.Normalize(rawPhone)).Scan(&v.Phone, &v.Name, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by phone", err)
	}

	return &v, nil
}

func (r *ClientReadStore) List(ctx context.Context) ([]*queries.ClientView, error) {
	rows, err := r.db.Query(ctx, `SELECT phone, name, created_at FROM clients ORDER BY name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	result := make([]*queries.ClientView, 0, 16)
	for rows.Next() {
		var v queries.ClientView
		if err := rows.Scan(&v.Phone, &v.Name, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan client row", err)
		}
		result = append(result, &v)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate client rows", rows.Err())
	}

	return result, nil
}
