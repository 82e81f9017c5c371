//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"cavilia/internal/domain/booking"
	"cavilia/internal/domain/reminder"
	"cavilia/internal/infra"
	"cavilia/internal/pkg/clock"
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

type bookingMocks struct {
	bookings  *commandsmock.MockBookingCommandRepository
	clients   *commandsmock.MockClientCommandRepository
	reminders *commandsmock.MockScheduledReminderCommandRepository
	services  *commandsmock.MockServiceReader
	rules     *commandsmock.MockReminderRuleReader
	templates *commandsmock.MockTemplateReader
	clk       *clock.MockClock
}

func newBookingUsecase(t *testing.T, now time.Time) (*commands.BookingUsecase, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := bookingMocks{
		bookings:  commandsmock.NewMockBookingCommandRepository(ctrl),
		clients:   commandsmock.NewMockClientCommandRepository(ctrl),
		reminders: commandsmock.NewMockScheduledReminderCommandRepository(ctrl),
		services:  commandsmock.NewMockServiceReader(ctrl),
		rules:     commandsmock.NewMockReminderRuleReader(ctrl),
		templates: commandsmock.NewMockTemplateReader(ctrl),
		clk:       clock.NewMockClock(now),
	}

	uc := commands.NewBookingUsecase(
		&fake.TxRunner{},
		m.bookings,
		m.clients,
		m.reminders,
		m.services,
		m.rules,
		m.templates,
		m.clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return uc, m
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	service := &queries.ServiceView{
		ID:       uuid.New(),
		Name:     "Corte de Cabelo",
		Price:    "R$ 45",
		Duration: "40 min",
	}

	baseInput := commands.CreateBookingInput{
		ServiceID:  &service.ID,
		Date:       date,
		Time:       "15:00",
		ClientName: "João Silva",
		Phone:      "11999999999",
	}

	t.Run("creates booking, upserts client and schedules reminders", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)

		rule, err := reminder.NewSimpleRule(reminder.UnitDay, 1, true)
		require.NoError(t, err)

		m.services.EXPECT().FindByID(gomock.Any(), service.ID).Return(service, nil)
		m.bookings.EXPECT().AcquireDateLock(gomock.Any(), gomock.Any(), "2025-06-10").Return(nil)
		m.bookings.EXPECT().FindOccupiedByDate(gomock.Any(), gomock.Any(), "2025-06-10").Return(nil, nil)

		var createdID uuid.UUID
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				createdID = b.ID()
				assert.Equal(t, booking.StatusActive, b.Status())
				assert.Equal(t, "11999999999", b.Phone())
				return nil
			})
		m.clients.EXPECT().Upsert(gomock.Any(), gomock.Any(), "11999999999", "João Silva").Return(nil)

		m.rules.EXPECT().ListActiveRules(gomock.Any()).Return([]*reminder.Rule{rule}, nil)
		m.templates.EXPECT().Get(gomock.Any()).Return("", nil)
		m.reminders.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, bookingID uuid.UUID, message string, scheduled []reminder.Scheduled) error {
				assert.Equal(t, createdID, bookingID)
				assert.Equal(t, "Olá João Silva, seu Corte de Cabelo é 10/06/2025 às 15:00.", message)
				require.Len(t, scheduled, 1)
				assert.Equal(t, time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC), scheduled[0].SendAt)
				return nil
			})

		id, err := uc.Create(ctx, baseInput)
		require.NoError(t, err)
		assert.Equal(t, createdID, id)
	})

	t.Run("resolves the service by name when no id is given", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		input := baseInput
		input.ServiceID = nil
		input.ServiceName = "Corte de Cabelo"

		m.services.EXPECT().FindByName(gomock.Any(), "Corte de Cabelo").Return(service, nil)
		m.bookings.EXPECT().AcquireDateLock(gomock.Any(), gomock.Any(), "2025-06-10").Return(nil)
		m.bookings.EXPECT().FindOccupiedByDate(gomock.Any(), gomock.Any(), "2025-06-10").Return(nil, nil)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.clients.EXPECT().Upsert(gomock.Any(), gomock.Any(), "11999999999", "João Silva").Return(nil)
		m.rules.EXPECT().ListActiveRules(gomock.Any()).Return(nil, nil)
		m.templates.EXPECT().Get(gomock.Any()).Return("", nil)

		_, err := uc.Create(ctx, input)
		require.NoError(t, err)
	})

	t.Run("overlapping slot is rejected with conflict details", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)

		occupied := []booking.OccupiedSlot{{
			BookingID:   uuid.New(),
			Time:        "14:40",
			ServiceName: "Barba",
			DurationMin: 30,
			Status:      booking.StatusActive,
		}}

		m.services.EXPECT().FindByID(gomock.Any(), service.ID).Return(service, nil)
		m.bookings.EXPECT().AcquireDateLock(gomock.Any(), gomock.Any(), "2025-06-10").Return(nil)
		m.bookings.EXPECT().FindOccupiedByDate(gomock.Any(), gomock.Any(), "2025-06-10").Return(occupied, nil)

		_, err := uc.Create(ctx, baseInput)
		require.ErrorIs(t, err, commands.ErrBookingConflict)

		var conflict *commands.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "14:40", conflict.Time)
		assert.Equal(t, "Barba", conflict.ServiceName)
	})

	t.Run("unknown service", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)

		m.services.EXPECT().FindByID(gomock.Any(), service.ID).
			Return(nil, infra.WrapRepoErr("service not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := uc.Create(ctx, baseInput)
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("invalid input never reaches the repository", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		input := baseInput
		input.ClientName = "  "

		m.services.EXPECT().FindByID(gomock.Any(), service.ID).Return(service, nil)

		_, err := uc.Create(ctx, input)
		assert.ErrorIs(t, err, commands.ErrInvalidBookingInput)
	})

	t.Run("reminder scheduling failure does not fail the booking", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)

		m.services.EXPECT().FindByID(gomock.Any(), service.ID).Return(service, nil)
		m.bookings.EXPECT().AcquireDateLock(gomock.Any(), gomock.Any(), "2025-06-10").Return(nil)
		m.bookings.EXPECT().FindOccupiedByDate(gomock.Any(), gomock.Any(), "2025-06-10").Return(nil, nil)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.clients.EXPECT().Upsert(gomock.Any(), gomock.Any(), "11999999999", "João Silva").Return(nil)
		m.rules.EXPECT().ListActiveRules(gomock.Any()).Return(nil, assert.AnError)

		id, err := uc.Create(ctx, baseInput)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})
}

func TestBookingUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	service := &queries.ServiceView{
		ID:       uuid.New(),
		Name:     "Corte de Cabelo",
		Duration: "40 min",
	}

	current := func() *booking.Booking {
		return booking.ReconstructBooking(
			uuid.New(), service.ID, date, "15:00",
			"João Silva", "11999999999", booking.StatusActive,
			now, now,
		)
	}

	t.Run("moving the time reschedules and recomputes reminders", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		existing := current()
		newTime := "16:00"

		m.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		m.bookings.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				assert.Equal(t, booking.StatusRescheduled, b.Status())
				assert.Equal(t, "16:00", b.Time())
				return nil
			})
		m.reminders.EXPECT().DeleteUnsentByBooking(gomock.Any(), gomock.Any(), existing.ID()).Return(nil)

		m.services.EXPECT().FindByID(gomock.Any(), service.ID).Return(service, nil)
		m.rules.EXPECT().ListActiveRules(gomock.Any()).Return(nil, nil)
		m.templates.EXPECT().Get(gomock.Any()).Return("", nil)

		err := uc.Update(ctx, commands.UpdateBookingInput{ID: existing.ID(), Time: &newTime})
		require.NoError(t, err)
	})

	t.Run("cancelling drops pending reminders and schedules nothing", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		existing := current()
		cancelled := booking.StatusCancelled

		m.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		m.bookings.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				assert.Equal(t, booking.StatusCancelled, b.Status())
				return nil
			})
		m.reminders.EXPECT().DeleteUnsentByBooking(gomock.Any(), gomock.Any(), existing.ID()).Return(nil)

		err := uc.Update(ctx, commands.UpdateBookingInput{ID: existing.ID(), Status: &cancelled})
		require.NoError(t, err)
	})

	t.Run("reactivating keeps reminders intact", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		existing := current()
		active := booking.StatusActive

		m.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		m.bookings.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := uc.Update(ctx, commands.UpdateBookingInput{ID: existing.ID(), Status: &active})
		require.NoError(t, err)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		existing := current()
		bogus := booking.Status("done")

		m.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)

		err := uc.Update(ctx, commands.UpdateBookingInput{ID: existing.ID(), Status: &bogus})
		assert.ErrorIs(t, err, commands.ErrInvalidBookingInput)
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		id := uuid.New()

		m.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.Update(ctx, commands.UpdateBookingInput{ID: id})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestBookingDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("removes the booking and its pending reminders", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		id := uuid.New()

		m.reminders.EXPECT().DeleteUnsentByBooking(gomock.Any(), gomock.Any(), id).Return(nil)
		m.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)

		require.NoError(t, uc.Delete(ctx, id))
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc, m := newBookingUsecase(t, now)
		id := uuid.New()

		m.reminders.EXPECT().DeleteUnsentByBooking(gomock.Any(), gomock.Any(), id).Return(nil)
		m.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound))

		assert.ErrorIs(t, uc.Delete(ctx, id), commands.ErrBookingNotFound)
	})
}
