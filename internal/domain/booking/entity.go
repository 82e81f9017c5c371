package booking

import (
	"errors"
	"strings"
	"time"

	"cavilia/internal/pkg/phone"
	"cavilia/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName = errors.New("client name cannot be empty")
	ErrEmptyPhone      = errors.New("client phone cannot be empty")
	ErrEmptyTime       = errors.New("booking time cannot be empty")
	ErrZeroDate        = errors.New("booking date cannot be zero")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

// Booking is one appointment: a service on a calendar date at a local clock
// time ("HH:MM", no timezone conversion). The client phone doubles as the
// notification address.
type Booking struct {
	id         uuid.UUID
	serviceID  uuid.UUID
	date       time.Time
	timeOfDay  string
	clientName string
	phone      string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(serviceID uuid.UUID, date time.Time, timeOfDay, clientName, clientPhone string) (*Booking, error) {
	name := strings.TrimSpace(clientName)
	if name == "" {
		return nil, ErrEmptyClientName
	}
	if phone.Normalize(clientPhone) == "" {
		return nil, ErrEmptyPhone
	}
	if strings.TrimSpace(timeOfDay) == "" {
		return nil, ErrEmptyTime
	}
	if date.IsZero() {
		return nil, ErrZeroDate
	}

	return &Booking{
		id:         uuid.New(),
		serviceID:  serviceID,
		date:       date,
		timeOfDay:  strings.TrimSpace(timeOfDay),
		clientName: name,
		phone:      strings.TrimSpace(clientPhone),
		status:     StatusActive,
	}, nil
}

func ReconstructBooking(
	id, serviceID uuid.UUID,
	date time.Time,
	timeOfDay, clientName, clientPhone string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		serviceID:  serviceID,
		date:       date,
		timeOfDay:  timeOfDay,
		clientName: clientName,
		phone:      clientPhone,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ServiceID() uuid.UUID { return b.serviceID }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) Time() string         { return b.timeOfDay }
func (b *Booking) ClientName() string   { return b.clientName }
func (b *Booking) Phone() string        { return b.phone }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// DateKey groups bookings competing for the same calendar day.
func (b *Booking) DateKey() string {
	return timeutil.DateKey(b.date)
}

// StartsAt combines the calendar date with the clock time.
func (b *Booking) StartsAt() time.Time {
	return timeutil.CombineDateTime(b.date, b.timeOfDay)
}
