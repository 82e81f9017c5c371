//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"cavilia/internal/infra"
	"cavilia/internal/pkg/clock"
	"cavilia/internal/pkg/config"
	"cavilia/internal/usecase/commands"
	"cavilia/internal/usecase/queries"
	"cavilia/tests/common/fake"
	commandsmock "cavilia/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatchMocks struct {
	reminders     *commandsmock.MockScheduledReminderCommandRepository
	subscriptions *commandsmock.MockSubscriptionReader
	sender        *commandsmock.MockPushSender
	clk           *clock.MockClock
}

func newDispatchUsecase(t *testing.T, now time.Time) (*commands.DispatchUsecase, dispatchMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := dispatchMocks{
		reminders:     commandsmock.NewMockScheduledReminderCommandRepository(ctrl),
		subscriptions: commandsmock.NewMockSubscriptionReader(ctrl),
		sender:        commandsmock.NewMockPushSender(ctrl),
		clk:           clock.NewMockClock(now),
	}

	uc := commands.NewDispatchUsecase(
		&fake.TxRunner{},
		m.reminders,
		m.subscriptions,
		m.sender,
		m.clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		config.CronConfig{Secret: "secret", BatchSize: 50},
		config.PushConfig{IconURL: "/images/app-icon.png", ImageURL: "/images/emblem.png"},
	)
	return uc, m
}

func dueReminder(phone, message string) *queries.DueReminderView {
	return &queries.DueReminderView{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		Phone:       phone,
		MessageText: message,
		Label:       "1 dia antes",
		SendAt:      time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC),
	}
}

func TestDispatchDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 9, 15, 5, 0, 0, time.UTC)

	subscription := &queries.SubscriptionView{
		Phone:    "11999999999",
		Endpoint: "https://push.example.com/endpoint",
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	}

	t.Run("skips when another sweep holds the lock", func(t *testing.T) {
		uc, m := newDispatchUsecase(t, now)

		m.reminders.EXPECT().TryAcquireSweepLock(gomock.Any(), gomock.Any()).Return(false, nil)

		result, err := uc.DispatchDue(ctx)
		require.NoError(t, err)
		assert.Zero(t, result.Sent)
		assert.Zero(t, result.Failed)
	})

	t.Run("sends due reminder and marks it sent", func(t *testing.T) {
		uc, m := newDispatchUsecase(t, now)
		item := dueReminder("11999999999", "Olá João, seu Corte de Cabelo é 10/06/2025 às 15:00.")

		m.reminders.EXPECT().TryAcquireSweepLock(gomock.Any(), gomock.Any()).Return(true, nil)
		m.reminders.EXPECT().FindDueForUpdate(gomock.Any(), gomock.Any(), now, 50).
			Return([]*queries.DueReminderView{item}, nil)
		m.subscriptions.EXPECT().FindByPhone(gomock.Any(), "11999999999").Return(subscription, nil)
		m.sender.EXPECT().Send(gomock.Any(), subscription, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *queries.SubscriptionView, payload []byte) error {
				var body map[string]string
				require.NoError(t, json.Unmarshal(payload, &body))
				assert.Equal(t, "Lembrete CAVILIA", body["title"])
				assert.Equal(t, item.MessageText, body["body"])
				assert.Equal(t, "reminder-"+item.BookingID.String(), body["tag"])
				return nil
			})
		m.reminders.EXPECT().MarkSent(gomock.Any(), gomock.Any(), item.ID, now).Return(nil)

		result, err := uc.DispatchDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Sent)
		assert.Zero(t, result.Failed)
	})

	t.Run("normalizes phone before the subscription lookup", func(t *testing.T) {
		uc, m := newDispatchUsecase(t, now)
		item := dueReminder("5511999999999", "msg")

		m.reminders.EXPECT().TryAcquireSweepLock(gomock.Any(), gomock.Any()).Return(true, nil)
		m.reminders.EXPECT().FindDueForUpdate(gomock.Any(), gomock.Any(), now, 50).
			Return([]*queries.DueReminderView{item}, nil)
		m.subscriptions.EXPECT().FindByPhone(gomock.Any(), "11999999999").Return(subscription, nil)
		m.sender.EXPECT().Send(gomock.Any(), subscription, gomock.Any()).Return(nil)
		m.reminders.EXPECT().MarkSent(gomock.Any(), gomock.Any(), item.ID, now).Return(nil)

		_, err := uc.DispatchDue(ctx)
		require.NoError(t, err)
	})

	t.Run("missing subscription consumes the reminder as failed", func(t *testing.T) {
		uc, m := newDispatchUsecase(t, now)
		item := dueReminder("11988888888", "msg")

		m.reminders.EXPECT().TryAcquireSweepLock(gomock.Any(), gomock.Any()).Return(true, nil)
		m.reminders.EXPECT().FindDueForUpdate(gomock.Any(), gomock.Any(), now, 50).
			Return([]*queries.DueReminderView{item}, nil)
		m.subscriptions.EXPECT().FindByPhone(gomock.Any(), "11988888888").
			Return(nil, infra.WrapRepoErr("subscription not found", pgx.ErrNoRows, infra.KindNotFound))
		m.reminders.EXPECT().MarkSent(gomock.Any(), gomock.Any(), item.ID, now).Return(nil)

		result, err := uc.DispatchDue(ctx)
		require.NoError(t, err)
		assert.Zero(t, result.Sent)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("transport failure leaves the reminder unsent", func(t *testing.T) {
		uc, m := newDispatchUsecase(t, now)
		item := dueReminder("11999999999", "msg")

		m.reminders.EXPECT().TryAcquireSweepLock(gomock.Any(), gomock.Any()).Return(true, nil)
		m.reminders.EXPECT().FindDueForUpdate(gomock.Any(), gomock.Any(), now, 50).
			Return([]*queries.DueReminderView{item}, nil)
		m.subscriptions.EXPECT().FindByPhone(gomock.Any(), "11999999999").Return(subscription, nil)
		m.sender.EXPECT().Send(gomock.Any(), subscription, gomock.Any()).
			Return(assert.AnError)

		result, err := uc.DispatchDue(ctx)
		require.NoError(t, err)
		assert.Zero(t, result.Sent)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("mixed batch counts each outcome", func(t *testing.T) {
		uc, m := newDispatchUsecase(t, now)
		okItem := dueReminder("11999999999", "ok")
		noSubItem := dueReminder("11988888888", "no sub")

		m.reminders.EXPECT().TryAcquireSweepLock(gomock.Any(), gomock.Any()).Return(true, nil)
		m.reminders.EXPECT().FindDueForUpdate(gomock.Any(), gomock.Any(), now, 50).
			Return([]*queries.DueReminderView{okItem, noSubItem}, nil)
		m.subscriptions.EXPECT().FindByPhone(gomock.Any(), "11999999999").Return(subscription, nil)
		m.sender.EXPECT().Send(gomock.Any(), subscription, gomock.Any()).Return(nil)
		m.reminders.EXPECT().MarkSent(gomock.Any(), gomock.Any(), okItem.ID, now).Return(nil)
		m.subscriptions.EXPECT().FindByPhone(gomock.Any(), "11988888888").
			Return(nil, infra.WrapRepoErr("subscription not found", pgx.ErrNoRows, infra.KindNotFound))
		m.reminders.EXPECT().MarkSent(gomock.Any(), gomock.Any(), noSubItem.ID, now).Return(nil)

		result, err := uc.DispatchDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Sent)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("unexpected subscription error aborts the sweep", func(t *testing.T) {
		uc, m := newDispatchUsecase(t, now)
		item := dueReminder("11999999999", "msg")

		m.reminders.EXPECT().TryAcquireSweepLock(gomock.Any(), gomock.Any()).Return(true, nil)
		m.reminders.EXPECT().FindDueForUpdate(gomock.Any(), gomock.Any(), now, 50).
			Return([]*queries.DueReminderView{item}, nil)
		m.subscriptions.EXPECT().FindByPhone(gomock.Any(), "11999999999").
			Return(nil, infra.WrapRepoErr("query failed", assert.AnError))

		_, err := uc.DispatchDue(ctx)
		assert.Error(t, err)
	})
}
