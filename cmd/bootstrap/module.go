package bootstrap

import (
	"slotbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	SyncModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
