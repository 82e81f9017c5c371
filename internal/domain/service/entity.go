package service

import (
	"errors"
	"strings"
	"time"

	"cavilia/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("service name cannot be empty")
)

// Service is a bookable offering. Price and duration are opaque display
// strings ("R$ 45", "40 min"); the parsed duration in minutes is what the
// conflict detector works with.
type Service struct {
	id        uuid.UUID
	name      string
	desc      string
	price     string
	duration  string
	createdAt time.Time
	updatedAt time.Time
}

func NewService(name, desc, price, duration string) (*Service, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	return &Service{
		id:       uuid.New(),
		name:     trimmed,
		desc:     strings.TrimSpace(desc),
		price:    strings.TrimSpace(price),
		duration: strings.TrimSpace(duration),
	}, nil
}

func ReconstructService(id uuid.UUID, name, desc, price, duration string, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:        id,
		name:      name,
		desc:      desc,
		price:     price,
		duration:  duration,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Desc() string         { return s.desc }
func (s *Service) Price() string        { return s.price }
func (s *Service) Duration() string     { return s.duration }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

// DurationMinutes applies the display-string parsing policy: first integer
// found, 30 when absent, never below 1.
func (s *Service) DurationMinutes() int {
	return timeutil.ParseDurationMinutes(s.duration)
}
