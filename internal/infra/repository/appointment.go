package repository

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/converter"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
}

func NewAppointmentRepository(queries AppointmentWriteQueries) *AppointmentRepository {
	return &AppointmentRepository{queries: queries}
}

// Create relies on the partial unique index over scheduled slots; a lost
// race surfaces as KindDuplicateKey.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	id, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment, from appointment.Status) error {
	n, err := r.queries.UpdateAppointmentStatus(ctx, tx, converter.AppointmentToStatusParams(a, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
