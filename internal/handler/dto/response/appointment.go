package response

import (
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	PatientID            uuid.UUID `json:"patientId"`
	DoctorID             uuid.UUID `json:"doctorId"`
	Date                 string    `json:"date"`
	Time                 string    `json:"time"`
	Symptoms             string    `json:"symptoms"`
	MeetingURL           string    `json:"meetingUrl"`
	Status               string    `json:"status"`
	DoctorName           string    `json:"doctorName"`
	DoctorSpecialization string    `json:"doctorSpecialization,omitempty"`
	PatientName          string    `json:"patientName"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                   v.ID,
		PatientID:            v.PatientID,
		DoctorID:             v.DoctorID,
		Date:                 v.Date.String(),
		Time:                 v.Time,
		Symptoms:             v.Symptoms,
		MeetingURL:           v.MeetingURL,
		Status:               v.Status,
		DoctorName:           v.DoctorName,
		DoctorSpecialization: v.DoctorSpecialization,
		PatientName:          v.PatientName,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func FromAppointmentList(items []*queries.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, len(items))
	for i, it := range items {
		res[i] = FromAppointmentView(it)
	}
	return res
}
