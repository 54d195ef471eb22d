package request

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctorId" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	Time     string    `json:"time" binding:"required"`
	Symptoms string    `json:"symptoms" binding:"max=2000"`
}

func (r *CreateAppointmentRequest) ToDomain() (availability.Date, appointment.Symptoms, error) {
	date, err := availability.ParseDate(r.Date)
	if err != nil {
		return availability.Date{}, appointment.Symptoms{}, err
	}
	symptoms, err := appointment.NewSymptoms(r.Symptoms)
	if err != nil {
		return availability.Date{}, appointment.Symptoms{}, err
	}
	return date, symptoms, nil
}
