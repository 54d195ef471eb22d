package request

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/symptom"
)

type SymptomCheckRequest struct {
	Symptoms string `json:"symptoms" binding:"required"`
	Language string `json:"language"`
}

func (r *SymptomCheckRequest) ToDomain() (symptom.Query, error) {
	return symptom.NewQuery(r.Symptoms, r.Language)
}
