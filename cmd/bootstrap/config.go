package bootstrap

import (
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
