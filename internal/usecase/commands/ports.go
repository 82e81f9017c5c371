package commands

import (
	"context"
	"fmt"
	"time"

	"cavilia/internal/domain/booking"
	"cavilia/internal/domain/reminder"
	"cavilia/internal/domain/service"
	"cavilia/internal/infra/db"
	"cavilia/internal/pkg/errs"
	"cavilia/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound      = errs.New("service not found")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrRuleNotFound         = errs.New("reminder rule not found")
	ErrBookingConflict      = errs.New("booking time conflicts with an existing appointment")
	ErrInvalidBookingInput  = errs.New("invalid booking input")
	ErrInvalidRuleInput     = errs.New("invalid reminder rule input")
	ErrInvalidSubscription  = errs.New("invalid push subscription input")
	ErrInvalidServiceInput  = errs.New("invalid service input")
	ErrInvalidTemplateInput = errs.New("invalid reminder template input")
)

// ConflictError carries the occupied slot that blocked a booking so the
// handler can tell the client what to move around.
type ConflictError struct {
	Time        string
	ServiceName string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot %s is taken by %s", e.Time, e.ServiceName)
}

type BookingCommandRepository interface {
	AcquireDateLock(ctx context.Context, tx db.DBTX, dateKey string) error
	FindOccupiedByDate(ctx context.Context, tx db.DBTX, dateKey string) ([]booking.OccupiedSlot, error)
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateSchedule(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ServiceCommandRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *service.Service) error
	Update(ctx context.Context, tx db.DBTX, s *service.Service) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReminderRuleCommandRepository interface {
	Create(ctx context.Context, tx db.DBTX, rule *reminder.Rule) error
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ScheduledReminderCommandRepository interface {
	CreateBatch(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, message string, scheduled []reminder.Scheduled) error
	TryAcquireSweepLock(ctx context.Context, tx db.DBTX) (bool, error)
	FindDueForUpdate(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]*queries.DueReminderView, error)
	MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, sentAt time.Time) error
	DeleteUnsentByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error
}

type ClientCommandRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, rawPhone, name string) error
}

type SubscriptionCommandRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, rawPhone, endpoint, p256dh, auth string) error
	DeleteByPhone(ctx context.Context, tx db.DBTX, rawPhone string) error
}

type TemplateCommandRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, message string) error
}

type ScheduleBlocksCommandRepository interface {
	ReplaceAll(ctx context.Context, tx db.DBTX, blocks *queries.ScheduleBlocksView) error
}

// Read-side ports the commands depend on. Backed by the readstores; kept
// small so tests can fake them.
type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error)
	FindByName(ctx context.Context, name string) (*queries.ServiceView, error)
}

type ReminderRuleReader interface {
	ListActiveRules(ctx context.Context) ([]*reminder.Rule, error)
}

type TemplateReader interface {
	Get(ctx context.Context) (string, error)
}

type SubscriptionReader interface {
	FindByPhone(ctx context.Context, rawPhone string) (*queries.SubscriptionView, error)
}

// PushSender delivers one rendered payload to one subscription.
type PushSender interface {
	Send(ctx context.Context, sub *queries.SubscriptionView, payload []byte) error
}
