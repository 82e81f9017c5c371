package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReminderRuleReader interface {
	List(ctx context.Context) ([]*ReminderRuleView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReminderRuleView, error)
}

type ReminderRuleQueries struct {
	rules ReminderRuleReader
}

func NewReminderRuleQueries(rules ReminderRuleReader) *ReminderRuleQueries {
	return &ReminderRuleQueries{rules: rules}
}

func (q *ReminderRuleQueries) GetRule(ctx context.Context, id uuid.UUID) (*ReminderRuleView, error) {
	return q.rules.FindByID(ctx, id)
}

func (q *ReminderRuleQueries) ListRules(ctx context.Context) ([]*ReminderRuleView, error) {
	return q.rules.List(ctx)
}
