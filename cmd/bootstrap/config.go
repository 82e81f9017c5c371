package bootstrap

import (
	"cavilia/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CronConfig { return cfg.Cron },
		func(cfg config.Config) config.PushConfig { return cfg.Push },
	),
)
