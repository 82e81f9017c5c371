package writerepo

import (
	"context"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/phone"
)

type ClientRepository struct{}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// Upsert records the client under their normalized phone; a repeat booking
// with a new spelling of the name wins.
func (r *ClientRepository) Upsert(ctx context.Context, tx db.DBTX, rawPhone, name string) error {
	query := `
		INSERT INTO clients (phone, name, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name`

	_, err := tx.Exec(ctx, query, phone.Normalize(rawPhone), name)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert client", err)
	}
	return nil
}
