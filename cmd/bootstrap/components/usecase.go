package components

import (
	"cavilia/internal/pkg/clock"
	"cavilia/internal/usecase/commands"
	"cavilia/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUsecase,
		commands.NewServiceUsecase,
		commands.NewReminderRuleUsecase,
		commands.NewDispatchUsecase,
		commands.NewSubscriptionUsecase,
		commands.NewTemplateUsecase,
		commands.NewScheduleBlocksUsecase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewServiceQueries,
		queries.NewReminderRuleQueries,
		queries.NewClientQueries,
		queries.NewScheduleQueries,
	),
)
