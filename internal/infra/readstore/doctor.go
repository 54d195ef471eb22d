package readstore

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/doctor"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/converter"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/pgconv"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DoctorViewQueries interface {
	GetDoctorAvailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) ([]byte, error)
	GetDoctorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetDoctorByIDRow, error)
	ListDoctors(ctx context.Context, db sqlc.DBTX, specialization pgtype.Text) ([]sqlc.ListDoctorsRow, error)
}

type DoctorReadStore struct {
	queries DoctorViewQueries
	db      sqlc.DBTX
}

func NewDoctorReadStore(queries DoctorViewQueries, db sqlc.DBTX) *DoctorReadStore {
	return &DoctorReadStore{
		queries: queries,
		db:      db,
	}
}

// GetTemplate loads only the availability column. An unreadable document
// is reported as a DB failure rather than an empty schedule.
func (r *DoctorReadStore) GetTemplate(ctx context.Context, doctorID uuid.UUID) (availability.Template, error) {
	raw, err := r.queries.GetDoctorAvailability(ctx, r.db, doctorID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return availability.Template{}, infra.WrapRepoErr("doctor not found", err, infra.KindNotFound)
		}
		return availability.Template{}, infra.WrapRepoErr("failed to get doctor availability", err)
	}

	template, err := converter.TemplateFromJSON(raw)
	if err != nil {
		return availability.Template{}, infra.WrapRepoErr("failed to decode doctor availability", err, infra.KindDBFailure)
	}
	return template, nil
}

func (r *DoctorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DoctorView, error) {
	row, err := r.queries.GetDoctorByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("doctor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get doctor by id", err)
	}
	return toDoctorView(sqlc.ListDoctorsRow(row))
}

func (r *DoctorReadStore) List(ctx context.Context, specialization string) ([]*queries.DoctorView, error) {
	rows, err := r.queries.ListDoctors(ctx, r.db, pgconv.StringToPgtype(specialization))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list doctors", err)
	}

	views := make([]*queries.DoctorView, 0, len(rows))
	for _, row := range rows {
		v, err := toDoctorView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toDoctorView(row sqlc.ListDoctorsRow) (*queries.DoctorView, error) {
	template, err := converter.TemplateFromJSON(row.Availability)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode doctor availability", err, infra.KindDBFailure)
	}
	return &queries.DoctorView{
		ID:             row.ID,
		Email:          row.Email,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Specialization: pgconv.StringFromPgtype(row.Specialization),
		Experience:     int(pgconv.Int32FromPgtype(row.Experience)),
		Languages:      doctor.NormalizeLanguages(row.Languages),
		Availability:   template,
	}, nil
}
