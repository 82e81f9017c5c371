package bootstrap

import (
	"cavilia/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	PushModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
