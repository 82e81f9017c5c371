package commands

import (
	"context"

	"cavilia/internal/domain/reminder"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/errs"
	"cavilia/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRuleInput struct {
	Unit     string
	Quantity int
	Days     int
	Hours    int
	Minutes  int
	Active   bool
}

// IsComposite: a request carrying any day/hour/minute component is treated as
// composite even when unit/quantity are also present.
func (in CreateRuleInput) IsComposite() bool {
	return in.Days > 0 || in.Hours > 0 || in.Minutes > 0
}

type ReminderRuleUsecase struct {
	txRunner shared.TxRunner
	rules    ReminderRuleCommandRepository
}

func NewReminderRuleUsecase(txRunner shared.TxRunner, rules ReminderRuleCommandRepository) *ReminderRuleUsecase {
	return &ReminderRuleUsecase{txRunner: txRunner, rules: rules}
}

func (u *ReminderRuleUsecase) Create(ctx context.Context, input CreateRuleInput) (uuid.UUID, error) {
	var (
		rule *reminder.Rule
		err  error
	)
	if input.IsComposite() {
		rule, err = reminder.NewCompositeRule(input.Days, input.Hours, input.Minutes, input.Active)
	} else {
		rule, err = reminder.NewSimpleRule(reminder.Unit(input.Unit), input.Quantity, input.Active)
	}
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRuleInput)
	}

	err = u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.rules.Create(ctx, tx, rule)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rule.ID(), nil
}

// SetActive flips a rule without touching reminders already scheduled from
// it; deactivation only affects future bookings.
func (u *ReminderRuleUsecase) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		err := u.rules.SetActive(ctx, tx, id, active)
		if err != nil {
			return errs.Mark(err, ErrRuleNotFound)
		}
		return nil
	})
}

func (u *ReminderRuleUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		err := u.rules.Delete(ctx, tx, id)
		if err != nil {
			return errs.Mark(err, ErrRuleNotFound)
		}
		return nil
	})
}
