package commands

import (
	"context"
	"strings"

	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/errs"
	"cavilia/internal/usecase/shared"
)

type TemplateUsecase struct {
	txRunner  shared.TxRunner
	templates TemplateCommandRepository
}

func NewTemplateUsecase(txRunner shared.TxRunner, templates TemplateCommandRepository) *TemplateUsecase {
	return &TemplateUsecase{txRunner: txRunner, templates: templates}
}

// Save stores the message template used for reminders scheduled from now on.
// Reminders already on the books keep the text they were frozen with.
func (u *TemplateUsecase) Save(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.Mark(errs.New("template message cannot be empty"), ErrInvalidTemplateInput)
	}

	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.templates.Upsert(ctx, tx, message)
	})
}
