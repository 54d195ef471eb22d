package readstore

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/pharmacy"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/pgconv"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PharmacyViewQueries interface {
	SearchPharmacyStock(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchPharmacyStockParams) ([]sqlc.SearchPharmacyStockRow, error)
}

type PharmacyReadStore struct {
	queries PharmacyViewQueries
	db      sqlc.DBTX
}

func NewPharmacyReadStore(queries PharmacyViewQueries, db sqlc.DBTX) *PharmacyReadStore {
	return &PharmacyReadStore{
		queries: queries,
		db:      db,
	}
}

// SearchStock groups matching in-stock medicines under their pharmacy,
// keeping the row order of the query.
func (r *PharmacyReadStore) SearchStock(ctx context.Context, query pharmacy.StockQuery) ([]*queries.PharmacyStockView, error) {
	params := sqlc.SearchPharmacyStockParams{
		Medicine: pharmacy.EscapeLike(query.Medicine()),
		Village:  pgtype.Text{},
	}
	if query.HasVillage() {
		params.Village = pgconv.StringToPgtype(pharmacy.EscapeLike(query.Village()))
	}

	rows, err := r.queries.SearchPharmacyStock(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search pharmacy stock", err)
	}

	views := []*queries.PharmacyStockView{}
	var current *queries.PharmacyStockView
	for _, row := range rows {
		if current == nil || current.ID != row.PharmacyID {
			current = &queries.PharmacyStockView{
				ID:        row.PharmacyID,
				Name:      row.PharmacyName,
				Village:   row.Village,
				Address:   row.Address,
				Phone:     row.Phone,
				Medicines: []queries.MedicineStockView{},
			}
			views = append(views, current)
		}
		current.Medicines = append(current.Medicines, queries.MedicineStockView{
			ID:    row.MedicineID,
			Name:  row.MedicineName,
			Stock: row.Stock,
		})
	}
	return views, nil
}
