package response

import (
	"time"

	"cavilia/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReminderRuleResponse struct {
	ID       uuid.UUID `json:"id"`
	Unit     string    `json:"unit"`
	Quantity int       `json:"quantity"`
	Days     int       `json:"days"`
	Hours    int       `json:"hours"`
	Minutes  int       `json:"minutes"`
	Active   bool      `json:"active"`
}

func FromRuleView(v *queries.ReminderRuleView) *ReminderRuleResponse {
	return &ReminderRuleResponse{
		ID:       v.ID,
		Unit:     v.Unit,
		Quantity: v.Quantity,
		Days:     v.Days,
		Hours:    v.Hours,
		Minutes:  v.Minutes,
		Active:   v.Active,
	}
}

type CreatedRuleResponse struct {
	ID uuid.UUID `json:"id"`
}

type ScheduledReminderResponse struct {
	ID      uuid.UUID  `json:"id"`
	Message string     `json:"message"`
	Label   string     `json:"label"`
	SendAt  time.Time  `json:"sendAt"`
	SentAt  *time.Time `json:"sentAt,omitempty"`
}

func FromScheduledReminderView(v *queries.ScheduledReminderView) *ScheduledReminderResponse {
	return &ScheduledReminderResponse{
		ID:      v.ID,
		Message: v.MessageText,
		Label:   v.Label,
		SendAt:  v.SendAt,
		SentAt:  v.SentAt,
	}
}

type TemplateResponse struct {
	Message string `json:"message"`
}

type DispatchResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
