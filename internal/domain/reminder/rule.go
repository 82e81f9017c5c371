package reminder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidUnit     = errors.New("invalid reminder unit")
	ErrInvalidQuantity = errors.New("reminder quantity must be at least 1")
	ErrEmptyOffset     = errors.New("composite offset needs at least one component above zero")
	ErrNegativeOffset  = errors.New("composite offset components cannot be negative")
)

type Unit string

const (
	UnitDay    Unit = "day"
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitDay, UnitHour, UnitMinute:
		return true
	default:
		return false
	}
}

// Rule decides how long before an appointment a reminder fires. The offset is
// either simple (one unit + quantity) or composite (days/hours/minutes); a
// composite rule with all components zero behaves as simple.
type Rule struct {
	id       uuid.UUID
	unit     Unit
	quantity int
	days     int
	hours    int
	minutes  int
	active   bool
}

func NewSimpleRule(unit Unit, quantity int, active bool) (*Rule, error) {
	if !unit.IsValid() {
		return nil, ErrInvalidUnit
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return &Rule{
		id:       uuid.New(),
		unit:     unit,
		quantity: quantity,
		active:   active,
	}, nil
}

func NewCompositeRule(days, hours, minutes int, active bool) (*Rule, error) {
	if days < 0 || hours < 0 || minutes < 0 {
		return nil, ErrNegativeOffset
	}
	if days == 0 && hours == 0 && minutes == 0 {
		return nil, ErrEmptyOffset
	}

	return &Rule{
		id:      uuid.New(),
		unit:    UnitMinute,
		days:    days,
		hours:   hours,
		minutes: minutes,
		active:  active,
	}, nil
}

func ReconstructRule(id uuid.UUID, unit Unit, quantity, days, hours, minutes int, active bool) *Rule {
	return &Rule{
		id:       id,
		unit:     unit,
		quantity: quantity,
		days:     days,
		hours:    hours,
		minutes:  minutes,
		active:   active,
	}
}

func (r *Rule) ID() uuid.UUID { return r.id }
func (r *Rule) Unit() Unit    { return r.unit }
func (r *Rule) Quantity() int { return r.quantity }
func (r *Rule) Days() int     { return r.days }
func (r *Rule) Hours() int    { return r.hours }
func (r *Rule) Minutes() int  { return r.minutes }
func (r *Rule) Active() bool  { return r.active }

func (r *Rule) IsComposite() bool {
	return r.days > 0 || r.hours > 0 || r.minutes > 0
}

// SendAtBefore subtracts the rule's offset from the appointment instant.
// Composite components apply in day, hour, minute order; AddDate keeps day
// subtraction calendar-correct across month and year boundaries.
func (r *Rule) SendAtBefore(base time.Time) time.Time {
	if r.IsComposite() {
		sendAt := base.AddDate(0, 0, -r.days)
		sendAt = sendAt.Add(-time.Duration(r.hours) * time.Hour)
		return sendAt.Add(-time.Duration(r.minutes) * time.Minute)
	}

	switch r.unit {
	case UnitDay:
		return base.AddDate(0, 0, -r.quantity)
	case UnitHour:
		return base.Add(-time.Duration(r.quantity) * time.Hour)
	default:
		return base.Add(-time.Duration(r.quantity) * time.Minute)
	}
}

// Label renders the offset for display, e.g. "2 dias, 3 horas antes".
func (r *Rule) Label() string {
	if r.IsComposite() {
		parts := make([]string, 0, 3)
		if r.days > 0 {
			parts = append(parts, pluralize(r.days, "dia", "dias"))
		}
		if r.hours > 0 {
			parts = append(parts, pluralize(r.hours, "hora", "horas"))
		}
		if r.minutes > 0 {
			parts = append(parts, pluralize(r.minutes, "minuto", "minutos"))
		}
		return strings.Join(parts, ", ") + " antes"
	}

	switch r.unit {
	case UnitDay:
		return pluralize(r.quantity, "dia", "dias") + " antes"
	case UnitHour:
		return pluralize(r.quantity, "hora", "horas") + " antes"
	default:
		return pluralize(r.quantity, "minuto", "minutos") + " antes"
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
