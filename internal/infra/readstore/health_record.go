package readstore

import (
	"context"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/pgconv"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/google/uuid"
)

type HealthRecordViewQueries interface {
	GetHealthRecordByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.HealthRecords, error)
	ListHealthRecordsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHealthRecordsByUserFirstPageParams) ([]sqlc.HealthRecords, error)
	ListHealthRecordsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHealthRecordsByUserKeysetParams) ([]sqlc.HealthRecords, error)
}

type HealthRecordReadStore struct {
	queries HealthRecordViewQueries
	db      sqlc.DBTX
}

func NewHealthRecordReadStore(queries HealthRecordViewQueries, db sqlc.DBTX) *HealthRecordReadStore {
	return &HealthRecordReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HealthRecordReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HealthRecordView, error) {
	row, err := r.queries.GetHealthRecordByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("health record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get health record by id", err)
	}
	return toHealthRecordView(row), nil
}

func (r *HealthRecordReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.HealthRecordView, error) {
	rows, err := r.queries.ListHealthRecordsByUserFirstPage(ctx, r.db, sqlc.ListHealthRecordsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get health records first page by user", err)
	}
	return mapHealthRecordRows(rows), nil
}

func (r *HealthRecordReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastDate time.Time, lastID uuid.UUID, limit int32) ([]*queries.HealthRecordView, error) {
	rows, err := r.queries.ListHealthRecordsByUserKeyset(ctx, r.db, sqlc.ListHealthRecordsByUserKeysetParams{
		UserID: userID,
		Date:   pgconv.TimeToPgtype(lastDate),
		ID:     lastID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get health records keyset by user", err)
	}
	return mapHealthRecordRows(rows), nil
}

func mapHealthRecordRows(rows []sqlc.HealthRecords) []*queries.HealthRecordView {
	views := make([]*queries.HealthRecordView, len(rows))
	for i, row := range rows {
		views[i] = toHealthRecordView(row)
	}
	return views
}

func toHealthRecordView(row sqlc.HealthRecords) *queries.HealthRecordView {
	return &queries.HealthRecordView{
		ID:         row.ID,
		UserID:     row.UserID,
		Date:       pgconv.TimeFromPgtype(row.Date),
		Diagnosis:  row.Diagnosis,
		Medicines:  pgconv.NonNilStrings(row.Medicines),
		Notes:      row.Notes,
		DoctorName: row.DoctorName,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
