package writerepo

import (
	"context"

	"cavilia/internal/domain/reminder"
	"cavilia/internal/infra"
	"cavilia/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReminderRuleRepository struct{}

func NewReminderRuleRepository() *ReminderRuleRepository {
	return &ReminderRuleRepository{}
}

func (r *ReminderRuleRepository) Create(ctx context.Context, tx db.DBTX, rule *reminder.Rule) error {
	query := `
		INSERT INTO reminder_rules (id, unit, quantity, days, hours, minutes, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

	_, err := tx.Exec(ctx, query,
		rule.ID(), string(rule.Unit()), rule.Quantity(), rule.Days(), rule.Hours(), rule.Minutes(), rule.Active())
	if err != nil {
		return infra.WrapRepoErr("failed to insert reminder rule", err)
	}
	return nil
}

func (r *ReminderRuleRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := tx.Exec(ctx, `UPDATE reminder_rules SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to toggle reminder rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder rule not found for toggle", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReminderRuleRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reminder_rules WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reminder rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder rule not found for delete", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
