package writerepo

import (
	"context"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
)

type TemplateRepository struct{}

func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{}
}

// Upsert replaces the singleton reminder message template.
func (r *TemplateRepository) Upsert(ctx context.Context, tx db.DBTX, message string) error {
	query := `
		INSERT INTO reminder_message (id, message, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET message = EXCLUDED.message, updated_at = now()`

	_, err := tx.Exec(ctx, query, message)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert reminder message template", err)
	}
	return nil
}
