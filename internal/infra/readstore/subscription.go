package readstore

import (
	"context"
	"errors"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/phone"
	"cavilia/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type SubscriptionReadStore struct {
	db db.DBTX
}

func NewSubscriptionReadStore(dbtx db.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{db: dbtx}
}

func (r *SubscriptionReadStore) FindByPhone(ctx context.Context, rawPhone string) (*queries.SubscriptionView, error) {
	query := `SELECT phone, endpoint, p256dh, auth FROM push_subscriptions WHERE phone = $1`

	var v queries.SubscriptionView
	err := r.db.QueryRow(ctx, query, phone.Normalize(rawPhone)).Scan(&v.Phone, &v.Endpoint, &v.P256dh, &v.Auth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("push subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find push subscription by phone", err)
	}

	return &v, nil
}
