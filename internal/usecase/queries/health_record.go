package queries

import (
	"context"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHealthRecordNotFound = errs.New("health record not found")
	ErrInvalidCursor        = errs.New("invalid cursor")
)

type HealthRecordReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HealthRecordView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*HealthRecordView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastDate time.Time, lastID uuid.UUID, limit int32) ([]*HealthRecordView, error)
}

type HealthRecordQueries interface {
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*HealthRecordView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*HealthRecordView, *Cursor, error)
}

type healthRecordQueriesImpl struct {
	store HealthRecordReadStore
}

func NewHealthRecordQueries(store HealthRecordReadStore) HealthRecordQueries {
	return &healthRecordQueriesImpl{store: store}
}

// GetByID hides other users' records behind not-found.
func (q *healthRecordQueriesImpl) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*HealthRecordView, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHealthRecordNotFound
		}
		return nil, err
	}
	if rec.UserID != ownerID {
		return nil, ErrHealthRecordNotFound
	}
	return rec, nil
}

func (q *healthRecordQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*HealthRecordView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*HealthRecordView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	} else {
		lastDate, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByUserKeyset(ctx, userID, lastDate, lastID, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.Date, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
