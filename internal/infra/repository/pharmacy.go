package repository

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"

	"github.com/google/uuid"
)

type PharmacyWriteQueries interface {
	CreatePharmacy(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePharmacyParams) (uuid.UUID, error)
	UpsertMedicineStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertMedicineStockParams) error
}

type PharmacyRepository struct {
	queries PharmacyWriteQueries
}

func NewPharmacyRepository(queries PharmacyWriteQueries) *PharmacyRepository {
	return &PharmacyRepository{queries: queries}
}

func (r *PharmacyRepository) Create(ctx context.Context, tx sqlc.DBTX, p shared.PharmacyInput) (uuid.UUID, error) {
	id, err := r.queries.CreatePharmacy(ctx, tx, sqlc.CreatePharmacyParams{
		Name:    p.Name,
		Village: p.Village,
		Address: p.Address,
		Phone:   p.Phone,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pharmacy", err)
	}
	return id, nil
}

func (r *PharmacyRepository) SetStock(ctx context.Context, tx sqlc.DBTX, pharmacyID uuid.UUID, medicine string, stock int32) error {
	err := r.queries.UpsertMedicineStock(ctx, tx, sqlc.UpsertMedicineStockParams{
		PharmacyID: pharmacyID,
		Name:       medicine,
		Stock:      stock,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set medicine stock", err)
	}
	return nil
}
