package request

type CreateHealthRecordRequest struct {
	Diagnosis  string   `json:"diagnosis" binding:"required,max=500"`
	Medicines  []string `json:"medicines" binding:"max=50"`
	Notes      string   `json:"notes" binding:"max=2000"`
	DoctorName string   `json:"doctorName" binding:"max=200"`
}
