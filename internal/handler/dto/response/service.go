package response

import (
	"time"

	"cavilia/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Desc      string    `json:"desc"`
	Price     string    `json:"price"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:        v.ID,
		Name:      v.Name,
		Desc:      v.Desc,
		Price:     v.Price,
		Duration:  v.Duration,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

type CreatedServiceResponse struct {
	ID uuid.UUID `json:"id"`
}
