package components

import (
	"cavilia/internal/infra/db"
	"cavilia/internal/infra/readstore"
	"cavilia/internal/infra/uow"
	"cavilia/internal/infra/writerepo"
	"cavilia/internal/usecase/commands"
	"cavilia/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(NewDBTX),
	readstoreModule,
	repositoryModule,
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			readstore.NewReminderReadStore,
			fx.As(new(queries.ReminderReader)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(commands.ServiceReader)),
			fx.As(new(queries.ServiceReader)),
		),
		fx.Annotate(
			readstore.NewReminderRuleReadStore,
			fx.As(new(commands.ReminderRuleReader)),
			fx.As(new(queries.ReminderRuleReader)),
		),
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(commands.TemplateReader)),
			fx.As(new(queries.TemplateReader)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(commands.SubscriptionReader)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReader)),
		),
		fx.Annotate(
			readstore.NewScheduleBlocksReadStore,
			fx.As(new(queries.ScheduleBlocksReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPgxRunner,
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingCommandRepository)),
		),
		fx.Annotate(
			writerepo.NewServiceRepository,
			fx.As(new(commands.ServiceCommandRepository)),
		),
		fx.Annotate(
			writerepo.NewReminderRuleRepository,
			fx.As(new(commands.ReminderRuleCommandRepository)),
		),
		fx.Annotate(
			writerepo.NewScheduledReminderRepository,
			fx.As(new(commands.ScheduledReminderCommandRepository)),
		),
		fx.Annotate(
			writerepo.NewSubscriptionRepository,
			fx.As(new(commands.SubscriptionCommandRepository)),
		),
		fx.Annotate(
			writerepo.NewTemplateRepository,
			fx.As(new(commands.TemplateCommandRepository)),
		),
		fx.Annotate(
			writerepo.NewClientRepository,
			fx.As(new(commands.ClientCommandRepository)),
		),
		fx.Annotate(
			writerepo.NewScheduleBlocksRepository,
			fx.As(new(commands.ScheduleBlocksCommandRepository)),
		),
	),
)
