package response

import (
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HealthRecordResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Date       time.Time `json:"date"`
	Diagnosis  string    `json:"diagnosis"`
	Medicines  []string  `json:"medicines"`
	Notes      string    `json:"notes"`
	DoctorName string    `json:"doctorName"`
}

func FromHealthRecordView(v *queries.HealthRecordView) *HealthRecordResponse {
	var res HealthRecordResponse
	_ = copier.Copy(&res, v)
	if res.Medicines == nil {
		res.Medicines = []string{}
	}
	return &res
}

func FromHealthRecordList(items []*queries.HealthRecordView) []*HealthRecordResponse {
	res := make([]*HealthRecordResponse, len(items))
	for i, it := range items {
		res[i] = FromHealthRecordView(it)
	}
	return res
}
