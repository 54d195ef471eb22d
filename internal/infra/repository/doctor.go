package repository

import (
	"context"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/doctor"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/converter"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DoctorWriteQueries interface {
	CreateDoctor(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDoctorParams) (uuid.UUID, error)
	UpdateDoctorAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDoctorAvailabilityParams) (int64, error)
}

type DoctorRepository struct {
	queries DoctorWriteQueries
}

func NewDoctorRepository(queries DoctorWriteQueries) *DoctorRepository {
	return &DoctorRepository{queries: queries}
}

func (r *DoctorRepository) Create(ctx context.Context, tx sqlc.DBTX, d *doctor.Doctor) (uuid.UUID, error) {
	params, err := converter.DoctorToCreateParams(d)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to encode doctor schedule")
	}
	id, err := r.queries.CreateDoctor(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create doctor", err)
	}
	return id, nil
}

func (r *DoctorRepository) UpdateAvailability(ctx context.Context, tx sqlc.DBTX, doctorID uuid.UUID, schedule availability.Template, now time.Time) error {
	raw, err := converter.TemplateToJSON(schedule)
	if err != nil {
		return errs.Wrap(err, "failed to encode doctor schedule")
	}
	n, err := r.queries.UpdateDoctorAvailability(ctx, tx, sqlc.UpdateDoctorAvailabilityParams{
		ID:           doctorID,
		Availability: raw,
		UpdatedAt:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update doctor availability", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("doctor not found", nil, infra.KindNotFound)
	}
	return nil
}
