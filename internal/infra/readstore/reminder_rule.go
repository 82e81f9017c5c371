package readstore

import (
	"context"
	"errors"

	"cavilia/internal/domain/reminder"
	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReminderRuleReadStore struct {
	db db.DBTX
}

func NewReminderRuleReadStore(dbtx db.DBTX) *ReminderRuleReadStore {
	return &ReminderRuleReadStore{db: dbtx}
}

const ruleColumns = `id, unit, quantity, days, hours, minutes, active, created_at`

// Display order: unit ascending, quantity descending. Stable, not meaningful.
func (r *ReminderRuleReadStore) List(ctx context.Context) ([]*queries.ReminderRuleView, error) {
	query := `SELECT ` + ruleColumns + ` FROM reminder_rules ORDER BY unit ASC, quantity DESC`
	return r.listRules(ctx, query)
}

func (r *ReminderRuleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReminderRuleView, error) {
	query := `SELECT ` + ruleColumns + ` FROM reminder_rules WHERE id = $1`

	view, err := scanRuleView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reminder rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reminder rule by ID", err)
	}

	return view, nil
}

// ListActiveRules returns domain rules for the scheduler, active only.
func (r *ReminderRuleReadStore) ListActiveRules(ctx context.Context) ([]*reminder.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM reminder_rules WHERE active ORDER BY unit ASC, quantity DESC`

	views, err := r.listRules(ctx, query)
	if err != nil {
		return nil, err
	}

	rules := make([]*reminder.Rule, len(views))
	for i, v := range views {
		rules[i] = reminder.ReconstructRule(v.ID, reminder.Unit(v.Unit), v.Quantity, v.Days, v.Hours, v.Minutes, v.Active)
	}
	return rules, nil
}

func (r *ReminderRuleReadStore) listRules(ctx context.Context, query string) ([]*queries.ReminderRuleView, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reminder rules", err)
	}
	defer rows.Close()

	result := make([]*queries.ReminderRuleView, 0, 8)
	for rows.Next() {
		view, err := scanRuleView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder rule row", err)
		}
		result = append(result, view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate reminder rule rows", rows.Err())
	}

	return result, nil
}

func scanRuleView(row pgx.Row) (*queries.ReminderRuleView, error) {
	var v queries.ReminderRuleView
	err := row.Scan(&v.ID, &v.Unit, &v.Quantity, &v.Days, &v.Hours, &v.Minutes, &v.Active, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
