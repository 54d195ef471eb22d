package queries

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/pharmacy"
)

type PharmacyReadStore interface {
	SearchStock(ctx context.Context, query pharmacy.StockQuery) ([]*PharmacyStockView, error)
}

type PharmacyQueries interface {
	CheckStock(ctx context.Context, medicine, village string) ([]*PharmacyStockView, error)
}

type pharmacyQueriesImpl struct {
	store PharmacyReadStore
}

func NewPharmacyQueries(store PharmacyReadStore) PharmacyQueries {
	return &pharmacyQueriesImpl{store: store}
}

func (q *pharmacyQueriesImpl) CheckStock(ctx context.Context, medicine, village string) ([]*PharmacyStockView, error) {
	query, err := pharmacy.NewStockQuery(medicine, village)
	if err != nil {
		return nil, err
	}
	return q.store.SearchStock(ctx, query)
}
