package writerepo

import (
	"context"

	"cavilia/internal/domain/service"
	"cavilia/internal/infra"
	"cavilia/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

func (r *ServiceRepository) Create(ctx context.Context, tx db.DBTX, s *service.Service) error {
	query := `
		INSERT INTO services (id, name, "desc", price, duration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`

	_, err := tx.Exec(ctx, query, s.ID(), s.Name(), s.Desc(), s.Price(), s.Duration())
	if err != nil {
		return infra.WrapRepoErr("failed to insert service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx db.DBTX, s *service.Service) error {
	query := `
		UPDATE services
		SET name = $2, "desc" = $3, price = $4, duration = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, s.ID(), s.Name(), s.Desc(), s.Price(), s.Duration())
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found for update", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found for delete", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
