package push

import (
	"context"
	"fmt"
	"net/http"

	"cavilia/internal/pkg/config"
	"cavilia/internal/pkg/errs"
	"cavilia/internal/usecase/queries"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// WebPushSender delivers notification payloads over the Web Push protocol
// with VAPID authentication.
type WebPushSender struct {
	cfg config.PushConfig
}

func NewWebPushSender(cfg config.PushConfig) *WebPushSender {
	return &WebPushSender{cfg: cfg}
}

func (s *WebPushSender) Send(ctx context.Context, sub *queries.SubscriptionView, payload []byte) error {
	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, target, &webpush.Options{
		Subscriber:      s.cfg.Subscriber,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             int(s.cfg.TTL.Seconds()),
	})
	if err != nil {
		return errs.Wrap(err, "failed to send web push notification")
	}
	defer resp.Body.Close()

	// 404/410 mean the browser dropped the subscription; the caller treats
	// any send error as retryable, so surface those the same way.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.New(fmt.Sprintf("push service rejected notification with status %d", resp.StatusCode))
	}
	return nil
}
