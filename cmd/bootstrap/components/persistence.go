package components

import (
	"github.com/TARIFUDDIN/swasthalink/internal/infra/readstore"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/uow"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are built per transaction inside the unit of work, so only
// the read side and the UoW itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Doctor
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DoctorViewQueries)),
		),
		fx.Annotate(
			readstore.NewDoctorReadStore,
			fx.As(new(queries.DirectoryStore)),
			fx.As(new(queries.DoctorReadStore)),
		),
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.ReservationStore)),
			fx.As(new(queries.BookedSlotStore)),
			fx.As(new(queries.AppointmentReadStore)),
		),
		// HealthRecord
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HealthRecordViewQueries)),
		),
		fx.Annotate(
			readstore.NewHealthRecordReadStore,
			fx.As(new(queries.HealthRecordReadStore)),
		),
		// Pharmacy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PharmacyViewQueries)),
		),
		fx.Annotate(
			readstore.NewPharmacyReadStore,
			fx.As(new(queries.PharmacyReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
