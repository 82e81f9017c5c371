package request

import (
	"strings"
	"time"

	"cavilia/internal/domain/booking"
	"cavilia/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID   *uuid.UUID `json:"service_id,omitempty"`
	ServiceName string     `json:"service_name,omitempty"`
	Date        time.Time  `json:"date" binding:"required"`
	Time        string     `json:"time" binding:"required"`
	ClientName  string     `json:"client_name" binding:"required"`
	Phone       string     `json:"phone" binding:"required"`
}

// HasService rejects requests that identify the service neither way.
func (r CreateBookingRequest) HasService() bool {
	return r.ServiceID != nil || strings.TrimSpace(r.ServiceName) != ""
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID:   r.ServiceID,
		ServiceName: strings.TrimSpace(r.ServiceName),
		Date:        r.Date,
		Time:        strings.TrimSpace(r.Time),
		ClientName:  r.ClientName,
		Phone:       r.Phone,
	}
}

type UpdateBookingRequest struct {
	Date   *time.Time `json:"date,omitempty"`
	Time   *string    `json:"time,omitempty"`
	Status *string    `json:"status,omitempty"`
}

func (r UpdateBookingRequest) ToInput(id uuid.UUID) commands.UpdateBookingInput {
	input := commands.UpdateBookingInput{ID: id, Date: r.Date, Time: r.Time}
	if r.Status != nil {
		status := booking.Status(*r.Status)
		input.Status = &status
	}
	return input
}
