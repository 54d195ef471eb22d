package queries

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/infra"

	"github.com/google/uuid"
)

type DoctorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DoctorView, error)
	List(ctx context.Context, specialization string) ([]*DoctorView, error)
}

type BookedSlotStore interface {
	BookedSlotsByDoctor(ctx context.Context, doctorIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

type DoctorQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DoctorView, error)
	List(ctx context.Context, specialization string) ([]*DoctorListItem, error)
}

type doctorQueriesImpl struct {
	doctors DoctorReadStore
	booked  BookedSlotStore
}

func NewDoctorQueries(doctors DoctorReadStore, booked BookedSlotStore) DoctorQueries {
	return &doctorQueriesImpl{doctors: doctors, booked: booked}
}

func (q *doctorQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DoctorView, error) {
	d, err := q.doctors.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return d, nil
}

func (q *doctorQueriesImpl) List(ctx context.Context, specialization string) ([]*DoctorListItem, error) {
	doctors, err := q.doctors.List(ctx, specialization)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return []*DoctorListItem{}, nil
	}

	ids := make([]uuid.UUID, len(doctors))
	for i, d := range doctors {
		ids[i] = d.ID
	}
	booked, err := q.booked.BookedSlotsByDoctor(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*DoctorListItem, len(doctors))
	for i, d := range doctors {
		slots := booked[d.ID]
		if slots == nil {
			slots = []string{}
		}
		items[i] = &DoctorListItem{DoctorView: *d, BookedSlots: slots}
	}
	return items, nil
}
