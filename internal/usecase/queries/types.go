package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Price       string    `json:"price"`
	Duration    string    `json:"duration"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	ClientName  string    `json:"client_name"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Desc      string    `json:"desc"`
	Price     string    `json:"price"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReminderRuleView struct {
	ID        uuid.UUID `json:"id"`
	Unit      string    `json:"unit"`
	Quantity  int       `json:"quantity"`
	Days      int       `json:"days"`
	Hours     int       `json:"hours"`
	Minutes   int       `json:"minutes"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// DueReminderView is a scheduled reminder eligible for dispatch: send-at has
// passed and sent-at is still unset. MessageText was frozen at scheduling
// time.
type DueReminderView struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	Phone       string    `json:"phone"`
	MessageText string    `json:"message_text"`
	Label       string    `json:"label"`
	SendAt      time.Time `json:"send_at"`
}

type ScheduledReminderView struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   uuid.UUID  `json:"booking_id"`
	Phone       string     `json:"phone"`
	MessageText string     `json:"message_text"`
	Label       string     `json:"label"`
	SendAt      time.Time  `json:"send_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
}

type SubscriptionView struct {
	Phone    string `json:"phone"`
	Endpoint string `json:"endpoint"`
	P256dh   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

type ClientView struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type TimeBlockView struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Label string `json:"label"`
}

type ScheduleBlocksView struct {
	Dayoffs    []string        `json:"dayoffs"`
	TimeBlocks []TimeBlockView `json:"time_blocks"`
}
