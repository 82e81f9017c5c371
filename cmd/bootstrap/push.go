package bootstrap

import (
	"cavilia/internal/infra/push"
	"cavilia/internal/usecase/commands"

	"go.uber.org/fx"
)

var PushModule = fx.Module("push",
	fx.Provide(
		fx.Annotate(
			push.NewWebPushSender,
			fx.As(new(commands.PushSender)),
		),
	),
)
