package readstore

import (
	"context"
	"strings"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/pgconv"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentViewQueries interface {
	GetAppointmentViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAppointmentViewByIDRow, error)
	ListAppointmentsByPatient(ctx context.Context, db sqlc.DBTX, patientID uuid.UUID) ([]sqlc.ListAppointmentsByPatientRow, error)
	ListAppointmentsByDoctor(ctx context.Context, db sqlc.DBTX, doctorID uuid.UUID) ([]sqlc.ListAppointmentsByDoctorRow, error)
	ListActiveAppointmentTimes(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveAppointmentTimesParams) ([]string, error)
	ListScheduledSlotsByDoctors(ctx context.Context, db sqlc.DBTX, doctorIds []uuid.UUID) ([]sqlc.ListScheduledSlotsByDoctorsRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

// ListActiveReservations returns the time labels of scheduled appointments.
// Cancelled and completed ones never hold a slot.
func (r *AppointmentReadStore) ListActiveReservations(ctx context.Context, doctorID uuid.UUID, date availability.Date) ([]string, error) {
	times, err := r.queries.ListActiveAppointmentTimes(ctx, r.db, sqlc.ListActiveAppointmentTimesParams{
		DoctorID: doctorID,
		Date:     pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active appointment times", err)
	}
	return pgconv.NonNilStrings(times), nil
}

func (r *AppointmentReadStore) BookedSlotsByDoctor(ctx context.Context, doctorIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	rows, err := r.queries.ListScheduledSlotsByDoctors(ctx, r.db, doctorIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled slots", err)
	}

	booked := make(map[uuid.UUID][]string, len(doctorIDs))
	for _, row := range rows {
		date := availability.DateOf(pgconv.DateFromPgtype(row.Date))
		booked[row.DoctorID] = append(booked[row.DoctorID], queries.BookedSlotLabel(date, row.Time))
	}
	return booked, nil
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment view by id", err)
	}
	return toAppointmentView(sqlc.ListAppointmentsByPatientRow(row)), nil
}

func (r *AppointmentReadStore) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByPatient(ctx, r.db, patientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by patient", err)
	}
	views := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		views[i] = toAppointmentView(row)
	}
	return views, nil
}

func (r *AppointmentReadStore) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByDoctor(ctx, r.db, doctorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by doctor", err)
	}
	views := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		views[i] = toAppointmentView(sqlc.ListAppointmentsByPatientRow(row))
	}
	return views, nil
}

func toAppointmentView(row sqlc.ListAppointmentsByPatientRow) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:                   row.ID,
		PatientID:            row.PatientID,
		DoctorID:             row.DoctorID,
		Date:                 availability.DateOf(pgconv.DateFromPgtype(row.Date)),
		Time:                 row.Time,
		Symptoms:             row.Symptoms,
		MeetingURL:           row.MeetingUrl,
		Status:               row.Status,
		DoctorName:           fullName(row.DoctorFirstName, row.DoctorLastName),
		DoctorSpecialization: pgconv.StringFromPgtype(row.DoctorSpecialization),
		PatientName:          fullName(row.PatientFirstName, row.PatientLastName),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:            pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
