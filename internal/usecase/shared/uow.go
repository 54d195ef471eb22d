package shared

import (
	"context"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/doctor"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/healthrecord"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Doctors() DoctorRepository
	HealthRecords() HealthRecordRepository
	Pharmacies() PharmacyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	// UpdateStatus persists a's current status if the row still has status from.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment, from appointment.Status) error
}

type DoctorRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *doctor.Doctor) (uuid.UUID, error)
	UpdateAvailability(ctx context.Context, tx sqlc.DBTX, doctorID uuid.UUID, schedule availability.Template, now time.Time) error
}

type HealthRecordRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rec *healthrecord.Record) (uuid.UUID, error)
}

type PharmacyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p PharmacyInput) (uuid.UUID, error)
	SetStock(ctx context.Context, tx sqlc.DBTX, pharmacyID uuid.UUID, medicine string, stock int32) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
}
