package components

import (
	"github.com/TARIFUDDIN/swasthalink/internal/handler"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/api"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDoctorHandler,
		api.NewAppointmentHandler,
		api.NewHealthRecordHandler,
		api.NewPharmacyHandler,
		api.NewSymptomHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		middleware.NewSymptomRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
