package request

import "cavilia/internal/usecase/commands"

// RegisterSubscriptionRequest mirrors the browser PushSubscription JSON.
type RegisterSubscriptionRequest struct {
	Phone        string `json:"phone" binding:"required"`
	Subscription struct {
		Endpoint string `json:"endpoint" binding:"required"`
		Keys     struct {
			P256dh string `json:"p256dh" binding:"required"`
			Auth   string `json:"auth" binding:"required"`
		} `json:"keys" binding:"required"`
	} `json:"subscription" binding:"required"`
}

func (r RegisterSubscriptionRequest) ToInput() commands.RegisterSubscriptionInput {
	return commands.RegisterSubscriptionInput{
		Phone:    r.Phone,
		Endpoint: r.Subscription.Endpoint,
		P256dh:   r.Subscription.Keys.P256dh,
		Auth:     r.Subscription.Keys.Auth,
	}
}
