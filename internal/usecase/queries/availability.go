package queries

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDoctorNotFound = errs.New("doctor not found")

// DirectoryStore yields a doctor's weekly template. A doctor without a
// configured schedule has an empty template; an unknown doctor is KindNotFound.
type DirectoryStore interface {
	GetTemplate(ctx context.Context, doctorID uuid.UUID) (availability.Template, error)
}

// ReservationStore lists the time labels held by scheduled appointments.
type ReservationStore interface {
	ListActiveReservations(ctx context.Context, doctorID uuid.UUID, date availability.Date) ([]string, error)
}

type AvailabilityQueries interface {
	Resolve(ctx context.Context, doctorID uuid.UUID, date availability.Date) ([]string, error)
}

type availabilityQueriesImpl struct {
	directory    DirectoryStore
	reservations ReservationStore
}

func NewAvailabilityQueries(directory DirectoryStore, reservations ReservationStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		directory:    directory,
		reservations: reservations,
	}
}

// Resolve recomputes the free labels on every call. Store errors other
// than not-found are returned untouched.
func (q *availabilityQueriesImpl) Resolve(ctx context.Context, doctorID uuid.UUID, date availability.Date) ([]string, error) {
	weekday := date.Weekday()

	template, err := q.directory.GetTemplate(ctx, doctorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	occupied, err := q.reservations.ListActiveReservations(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	return template.Available(weekday, occupied), nil
}
