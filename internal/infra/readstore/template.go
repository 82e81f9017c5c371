package readstore

import (
	"context"
	"errors"

	"cavilia/internal/domain/reminder"
	"cavilia/internal/infra"
	"cavilia/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// TemplateReadStore reads the singleton reminder message template. A missing
// row falls back to the default text rather than erroring.
type TemplateReadStore struct {
	db db.DBTX
}

func NewTemplateReadStore(dbtx db.DBTX) *TemplateReadStore {
	return &TemplateReadStore{db: dbtx}
}

func (r *TemplateReadStore) Get(ctx context.Context) (string, error) {
	var message string
	err := r.db.QueryRow(ctx, `SELECT message FROM reminder_message WHERE id = 1`).Scan(&message)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reminder.DefaultMessageTemplate, nil
		}
		return "", infra.WrapRepoErr("failed to read reminder message template", err)
	}

	if message == "" {
		return reminder.DefaultMessageTemplate, nil
	}
	return message, nil
}
