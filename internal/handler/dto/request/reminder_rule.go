package request

import "cavilia/internal/usecase/commands"

// CreateRuleRequest accepts either shape: unit+quantity for a simple rule, or
// any of days/hours/minutes for a composite one.
type CreateRuleRequest struct {
	Unit     string `json:"unit"`
	Quantity int    `json:"quantity"`
	Days     int    `json:"days"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Active   *bool  `json:"active,omitempty"`
}

func (r CreateRuleRequest) ToInput() commands.CreateRuleInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return commands.CreateRuleInput{
		Unit:     r.Unit,
		Quantity: r.Quantity,
		Days:     r.Days,
		Hours:    r.Hours,
		Minutes:  r.Minutes,
		Active:   active,
	}
}

type ToggleRuleRequest struct {
	Active bool `json:"active"`
}
