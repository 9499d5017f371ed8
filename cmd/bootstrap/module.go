package bootstrap

import (
	"runes-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	ClientModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
