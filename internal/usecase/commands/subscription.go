package commands

import (
	"context"
	"strings"

	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/errs"
	"cavilia/internal/pkg/phone"
	"cavilia/internal/usecase/shared"
)

type RegisterSubscriptionInput struct {
	Phone    string
	Endpoint string
	P256dh   string
	Auth     string
}

type SubscriptionUsecase struct {
	txRunner      shared.TxRunner
	subscriptions SubscriptionCommandRepository
}

func NewSubscriptionUsecase(txRunner shared.TxRunner, subscriptions SubscriptionCommandRepository) *SubscriptionUsecase {
	return &SubscriptionUsecase{txRunner: txRunner, subscriptions: subscriptions}
}

func (u *SubscriptionUsecase) Register(ctx context.Context, input RegisterSubscriptionInput) error {
	if phone.Normalize(input.Phone) == "" {
		return errs.Mark(errs.New("phone cannot be empty"), ErrInvalidSubscription)
	}
	if strings.TrimSpace(input.Endpoint) == "" || input.P256dh == "" || input.Auth == "" {
		return errs.Mark(errs.New("subscription endpoint and keys are required"), ErrInvalidSubscription)
	}

	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.subscriptions.Upsert(ctx, tx, input.Phone, input.Endpoint, input.P256dh, input.Auth)
	})
}

func (u *SubscriptionUsecase) Unregister(ctx context.Context, rawPhone string) error {
	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.subscriptions.DeleteByPhone(ctx, tx, rawPhone)
	})
}
