package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/clock"
	"cavilia/internal/pkg/config"
	"cavilia/internal/pkg/errs"
	"cavilia/internal/pkg/phone"
	"cavilia/internal/usecase/queries"
	"cavilia/internal/usecase/shared"
)

const notificationTitle = "Lembrete CAVILIA"

type DispatchResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

type notificationPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
	Tag   string `json:"tag"`
}

type DispatchUsecase struct {
	txRunner      shared.TxRunner
	reminders     ScheduledReminderCommandRepository
	subscriptions SubscriptionReader
	sender        PushSender
	clk           clock.Clock
	logger        *slog.Logger
	batchSize     int
	pushCfg       config.PushConfig
}

func NewDispatchUsecase(
	txRunner shared.TxRunner,
	reminders ScheduledReminderCommandRepository,
	subscriptions SubscriptionReader,
	sender PushSender,
	clk clock.Clock,
	logger *slog.Logger,
	cronCfg config.CronConfig,
	pushCfg config.PushConfig,
) *DispatchUsecase {
	return &DispatchUsecase{
		txRunner:      txRunner,
		reminders:     reminders,
		subscriptions: subscriptions,
		sender:        sender,
		clk:           clk,
		logger:        logger,
		batchSize:     cronCfg.BatchSize,
		pushCfg:       pushCfg,
	}
}

// DispatchDue sends every reminder whose send-at has passed, at-least-once.
// A reminder is marked sent only after its push succeeds, or when the client
// has no subscription at all (there is nothing to retry against). Transport
// failures leave the row unsent so the next sweep picks it up again.
//
// The sweep advisory lock plus SKIP LOCKED keeps overlapping cron triggers
// from double-sending: a second sweep simply finds nothing to do.
func (u *DispatchUsecase) DispatchDue(ctx context.Context) (DispatchResult, error) {
	var result DispatchResult

	err := u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		acquired, err := u.reminders.TryAcquireSweepLock(ctx, tx)
		if err != nil {
			return err
		}
		if !acquired {
			u.logger.InfoContext(ctx, "dispatch sweep already running, skipping")
			return nil
		}

		due, err := u.reminders.FindDueForUpdate(ctx, tx, u.clk.Now(), u.batchSize)
		if err != nil {
			return err
		}

		for _, item := range due {
			if err := u.dispatchOne(ctx, tx, item, &result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return DispatchResult{}, err
	}

	if result.Sent > 0 || result.Failed > 0 {
		u.logger.InfoContext(ctx, "dispatch sweep finished",
			slog.Int("sent", result.Sent),
			slog.Int("failed", result.Failed),
		)
	}
	return result, nil
}

func (u *DispatchUsecase) dispatchOne(ctx context.Context, tx db.DBTX, item *queries.DueReminderView, result *DispatchResult) error {
	sub, err := u.subscriptions.FindByPhone(ctx, phone.Normalize(item.Phone))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// No subscription is terminal: retrying cannot fix it, so the
			// reminder is consumed and counted failed.
			result.Failed++
			return u.reminders.MarkSent(ctx, tx, item.ID, u.clk.Now())
		}
		return err
	}

	payload, err := json.Marshal(notificationPayload{
		Title: notificationTitle,
		Body:  item.MessageText,
		Icon:  u.pushCfg.IconURL,
		Image: u.pushCfg.ImageURL,
		Tag:   "reminder-" + item.BookingID.String(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}

	if err := u.sender.Send(ctx, sub, payload); err != nil {
		// Transient by assumption: leave unsent for the next sweep.
		result.Failed++
		u.logger.WarnContext(ctx, "push delivery failed, will retry",
			slog.String("reminder_id", item.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	result.Sent++
	return u.reminders.MarkSent(ctx, tx, item.ID, u.clk.Now())
}
