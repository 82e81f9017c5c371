package response

import (
	"time"

	"cavilia/internal/usecase/queries"
)

type ClientResponse struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromClientView(v *queries.ClientView) *ClientResponse {
	return &ClientResponse{
		Phone:     v.Phone,
		Name:      v.Name,
		CreatedAt: v.CreatedAt,
	}
}
