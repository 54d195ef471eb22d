package queries

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrAppointmentAccess   = errs.New("appointment access denied")
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*AppointmentView, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*AppointmentView, error)
	ListForActor(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*AppointmentView, error) {
	a, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if actorRole != user.RoleAdmin && a.PatientID != actorID && a.DoctorID != actorID {
		return nil, ErrAppointmentAccess
	}
	return a, nil
}

// ListForActor lists a doctor's consultations, or a patient's own bookings.
func (q *appointmentQueriesImpl) ListForActor(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*AppointmentView, error) {
	if actorRole == user.RoleDoctor {
		return q.store.ListByDoctor(ctx, actorID)
	}
	return q.store.ListByPatient(ctx, actorID)
}
