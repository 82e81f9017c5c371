package components

import (
	"cavilia/internal/handler"
	"cavilia/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewServiceHandler,
		api.NewReminderRuleHandler,
		api.NewReminderMessageHandler,
		api.NewSubscriptionHandler,
		api.NewClientHandler,
		api.NewScheduleHandler,
		api.NewCronHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	booking *api.BookingHandler,
	service *api.ServiceHandler,
	reminderRule *api.ReminderRuleHandler,
	reminderMessage *api.ReminderMessageHandler,
	subscription *api.SubscriptionHandler,
	client *api.ClientHandler,
	schedule *api.ScheduleHandler,
	cron *api.CronHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:         booking,
		Service:         service,
		ReminderRule:    reminderRule,
		ReminderMessage: reminderMessage,
		Subscription:    subscription,
		Client:          client,
		Schedule:        schedule,
		Cron:            cron,
	}
}
