package request

import "cavilia/internal/usecase/commands"

type ServiceRequest struct {
	Name     string `json:"name" binding:"required"`
	Desc     string `json:"desc"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
}

func (r ServiceRequest) ToInput() commands.ServiceInput {
	return commands.ServiceInput{
		Name:     r.Name,
		Desc:     r.Desc,
		Price:    r.Price,
		Duration: r.Duration,
	}
}
