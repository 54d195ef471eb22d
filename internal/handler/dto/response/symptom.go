package response

type SymptomAdviceResponse struct {
	Advice string `json:"advice"`
}
