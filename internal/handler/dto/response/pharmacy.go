package response

import (
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MedicineStockResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Stock int32     `json:"stock"`
}

type PharmacyStockResponse struct {
	ID        uuid.UUID               `json:"id"`
	Name      string                  `json:"name"`
	Village   string                  `json:"village"`
	Address   string                  `json:"address"`
	Phone     string                  `json:"phone"`
	Medicines []MedicineStockResponse `json:"medicines"`
}

func FromPharmacyStock(items []*queries.PharmacyStockView) []*PharmacyStockResponse {
	res := make([]*PharmacyStockResponse, 0, len(items))
	_ = copier.Copy(&res, &items)
	return res
}
