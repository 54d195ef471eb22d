package bootstrap

import (
	"github.com/TARIFUDDIN/swasthalink/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	AIModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
