package writerepo

import (
	"context"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/phone"
)

type SubscriptionRepository struct{}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

// Upsert keeps one subscription per normalized phone; re-registering a device
// replaces the previous endpoint and keys.
func (r *SubscriptionRepository) Upsert(ctx context.Context, tx db.DBTX, rawPhone, endpoint, p256dh, auth string) error {
	query := `
		INSERT INTO push_subscriptions (phone, endpoint, p256dh, auth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (phone) DO UPDATE
		SET endpoint = EXCLUDED.endpoint, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth, updated_at = now()`

	_, err := tx.Exec(ctx, query, phone.Normalize(rawPhone), endpoint, p256dh, auth)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert push subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) DeleteByPhone(ctx context.Context, tx db.DBTX, rawPhone string) error {
	_, err := tx.Exec(ctx, `DELETE FROM push_subscriptions WHERE phone = $1`, phone.Normalize(rawPhone))
	if err != nil {
		return infra.WrapRepoErr("failed to delete push subscription", err)
	}
	return nil
}
