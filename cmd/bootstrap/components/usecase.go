package components

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/config"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clock clock.Clock, cfg config.Config) *appointment.Services {
		return &appointment.Services{
			Clock: clock,
			Policy: appointment.BookingPolicy{
				HorizonDays: cfg.Booking.HorizonDays,
				Location:    cfg.Booking.Location(),
			},
			Room: appointment.VideoRoom{
				BaseURL: cfg.Video.BaseURL,
				Prefix:  cfg.Video.RoomPrefix,
			},
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAppointmentCommands,
		commands.NewDoctorCommands,
		commands.NewHealthRecordCommands,
		commands.NewSymptomCommands,
		// booking re-checks the slot through the same resolver the API exposes
		func(q queries.AvailabilityQueries) commands.SlotResolver { return q },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewUserQueries,
		queries.NewDoctorQueries,
		queries.NewAppointmentQueries,
		queries.NewHealthRecordQueries,
		queries.NewPharmacyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
