package commands

import (
	"context"
	"log/slog"
	"time"

	"cavilia/internal/domain/booking"
	"cavilia/internal/domain/reminder"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/clock"
	"cavilia/internal/pkg/errs"
	"cavilia/internal/pkg/timeutil"
	"cavilia/internal/usecase/queries"
	"cavilia/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ServiceID   *uuid.UUID
	ServiceName string
	Date        time.Time
	Time        string
	ClientName  string
	Phone       string
}

type UpdateBookingInput struct {
	ID     uuid.UUID
	Date   *time.Time
	Time   *string
	Status *booking.Status
}

type BookingUsecase struct {
	txRunner  shared.TxRunner
	bookings  BookingCommandRepository
	clients   ClientCommandRepository
	reminders ScheduledReminderCommandRepository
	services  ServiceReader
	rules     ReminderRuleReader
	templates TemplateReader
	clk       clock.Clock
	logger    *slog.Logger
}

func NewBookingUsecase(
	txRunner shared.TxRunner,
	bookings BookingCommandRepository,
	clients ClientCommandRepository,
	reminders ScheduledReminderCommandRepository,
	services ServiceReader,
	rules ReminderRuleReader,
	templates TemplateReader,
	clk clock.Clock,
	logger *slog.Logger,
) *BookingUsecase {
	return &BookingUsecase{
		txRunner:  txRunner,
		bookings:  bookings,
		clients:   clients,
		reminders: reminders,
		services:  services,
		rules:     rules,
		templates: templates,
		clk:       clk,
		logger:    logger,
	}
}

// Create validates the slot against every booking on the same day and inserts
// atomically. The per-date advisory lock makes the check-then-insert safe
// against concurrent requests for the same day; requests for other days never
// wait on it.
func (u *BookingUsecase) Create(ctx context.Context, input CreateBookingInput) (uuid.UUID, error) {
	svc, err := u.resolveService(ctx, input)
	if err != nil {
		return uuid.Nil, err
	}

	newBooking, err := booking.NewBooking(svc.ID, input.Date, input.Time, input.ClientName, input.Phone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidBookingInput)
	}
	durationMin := timeutil.ParseDurationMinutes(svc.Duration)

	err = u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := u.bookings.AcquireDateLock(ctx, tx, newBooking.DateKey()); err != nil {
			return err
		}

		occupied, err := u.bookings.FindOccupiedByDate(ctx, tx, newBooking.DateKey())
		if err != nil {
			return err
		}
		candidate := booking.Candidate{Date: newBooking.Date(), Time: newBooking.Time(), DurationMin: durationMin}
		if hit := booking.FindConflict(candidate, occupied); hit != nil {
			conflict := &ConflictError{Time: hit.Time, ServiceName: hit.ServiceName}
			return errs.Mark(conflict, ErrBookingConflict)
		}

		if err := u.bookings.Create(ctx, tx, newBooking); err != nil {
			return err
		}
		return u.clients.Upsert(ctx, tx, newBooking.Phone(), newBooking.ClientName())
	})
	if err != nil {
		return uuid.Nil, err
	}

	// Reminder scheduling is best effort: the booking stands even when it
	// fails, matching creation being the client-facing action.
	if err := u.scheduleReminders(ctx, newBooking, svc.Name); err != nil {
		u.logger.WarnContext(ctx, "failed to schedule reminders for booking",
			slog.String("booking_id", newBooking.ID().String()),
			slog.String("error", err.Error()),
		)
	}

	return newBooking.ID(), nil
}

// Update applies a partial change. Moving the date or time marks the booking
// rescheduled, drops its unsent reminders and recomputes them against the new
// start. The new slot is not conflict-checked; the admin moving a booking is
// trusted to resolve collisions by hand.
func (u *BookingUsecase) Update(ctx context.Context, input UpdateBookingInput) error {
	moved := input.Date != nil || input.Time != nil

	var updated *booking.Booking
	err := u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		current, err := u.bookings.FindByID(ctx, tx, input.ID)
		if err != nil {
			return errs.Mark(err, ErrBookingNotFound)
		}

		date := current.Date()
		timeOfDay := current.Time()
		status := current.Status()
		if input.Date != nil {
			date = *input.Date
		}
		if input.Time != nil {
			timeOfDay = *input.Time
		}
		if moved {
			status = booking.StatusRescheduled
		}
		if input.Status != nil {
			if !input.Status.IsValid() {
				return errs.Mark(booking.ErrInvalidStatus, ErrInvalidBookingInput)
			}
			status = *input.Status
		}

		updated = booking.ReconstructBooking(
			current.ID(), current.ServiceID(), date, timeOfDay,
			current.ClientName(), current.Phone(), status,
			current.CreatedAt(), u.clk.Now(),
		)
		if err := u.bookings.UpdateSchedule(ctx, tx, updated); err != nil {
			return err
		}

		if moved || status == booking.StatusCancelled {
			return u.reminders.DeleteUnsentByBooking(ctx, tx, current.ID())
		}
		return nil
	})
	if err != nil {
		return err
	}

	if moved && updated.Status() != booking.StatusCancelled {
		svc, err := u.services.FindByID(ctx, updated.ServiceID())
		if err != nil {
			return err
		}
		if err := u.scheduleReminders(ctx, updated, svc.Name); err != nil {
			u.logger.WarnContext(ctx, "failed to reschedule reminders for booking",
				slog.String("booking_id", updated.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}

func (u *BookingUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := u.reminders.DeleteUnsentByBooking(ctx, tx, id); err != nil {
			return err
		}
		err := u.bookings.Delete(ctx, tx, id)
		if err != nil {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return nil
	})
}

func (u *BookingUsecase) resolveService(ctx context.Context, input CreateBookingInput) (*queries.ServiceView, error) {
	if input.ServiceID != nil {
		svc, err := u.services.FindByID(ctx, *input.ServiceID)
		if err != nil {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return svc, nil
	}
	svc, err := u.services.FindByName(ctx, input.ServiceName)
	if err != nil {
		return nil, errs.Mark(err, ErrServiceNotFound)
	}
	return svc, nil
}

// scheduleReminders freezes the rendered message at scheduling time: later
// template edits do not touch reminders already on the books.
func (u *BookingUsecase) scheduleReminders(ctx context.Context, b *booking.Booking, serviceName string) error {
	rules, err := u.rules.ListActiveRules(ctx)
	if err != nil {
		return err
	}
	template, err := u.templates.Get(ctx)
	if err != nil {
		return err
	}

	scheduled := reminder.Schedule(b.StartsAt(), rules, u.clk.Now())
	if len(scheduled) == 0 {
		return nil
	}

	message := reminder.RenderMessage(template, reminder.Placeholders{
		Name:    b.ClientName(),
		Service: serviceName,
		Date:    reminder.FormatDate(b.Date()),
		Time:    b.Time(),
	})

	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.reminders.CreateBatch(ctx, tx, b.ID(), message, scheduled)
	})
}
