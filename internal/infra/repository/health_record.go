package repository

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/healthrecord"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/converter"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type HealthRecordWriteQueries interface {
	CreateHealthRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHealthRecordParams) (uuid.UUID, error)
}

type HealthRecordRepository struct {
	queries HealthRecordWriteQueries
}

func NewHealthRecordRepository(queries HealthRecordWriteQueries) *HealthRecordRepository {
	return &HealthRecordRepository{queries: queries}
}

func (r *HealthRecordRepository) Create(ctx context.Context, tx sqlc.DBTX, rec *healthrecord.Record) (uuid.UUID, error) {
	id, err := r.queries.CreateHealthRecord(ctx, tx, converter.HealthRecordToCreateParams(rec))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create health record", err)
	}
	return id, nil
}
