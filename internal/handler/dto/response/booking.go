package response

import (
	"time"

	"cavilia/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Price       string    `json:"price"`
	Duration    string    `json:"duration"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ClientName  string    `json:"clientName"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID,
		ServiceID:   v.ServiceID,
		ServiceName: v.ServiceName,
		Price:       v.Price,
		Duration:    v.Duration,
		Date:        v.Date.Format("2006-01-02"),
		Time:        v.Time,
		ClientName:  v.ClientName,
		Phone:       v.Phone,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type CreatedBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

// ConflictResponse tells the client which slot blocked them.
type ConflictResponse struct {
	Time        string `json:"time"`
	ServiceName string `json:"serviceName"`
}
