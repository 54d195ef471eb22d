//go:build unit || e2e

package builder

import (
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID         uuid.UUID
	PatientID  uuid.UUID
	DoctorID   uuid.UUID
	Date       availability.Date
	Time       string
	Symptoms   string
	MeetingURL string
	Status     string
	CreatedAt  time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	id := uuid.New()
	return &AppointmentBuilder{
		ID:         id,
		PatientID:  uuid.New(),
		DoctorID:   uuid.New(),
		Date:       availability.NewDate(2030, time.January, 7),
		Time:       "10:00",
		Symptoms:   "fever since two days",
		MeetingURL: "https://meet.example.test/swasthalink-" + id.String(),
		Status:     "scheduled",
		CreatedAt:  time.Date(2030, time.January, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

func (a *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		DoctorID: a.DoctorID,
		Date:     a.Date.String(),
		Time:     a.Time,
		Symptoms: a.Symptoms,
	}
}

func (a *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:                   a.ID,
		PatientID:            a.PatientID,
		DoctorID:             a.DoctorID,
		Date:                 a.Date,
		Time:                 a.Time,
		Symptoms:             a.Symptoms,
		MeetingURL:           a.MeetingURL,
		Status:               a.Status,
		DoctorName:           "Anil Sharma",
		DoctorSpecialization: "General Physician",
		PatientName:          "Simran Kaur",
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.CreatedAt,
	}
}

func (a *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	return &shared.AppointmentSnapshot{
		ID:         a.ID,
		PatientID:  a.PatientID,
		DoctorID:   a.DoctorID,
		Date:       a.Date,
		Time:       a.Time,
		Symptoms:   a.Symptoms,
		MeetingURL: a.MeetingURL,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.CreatedAt,
	}
}

func (a *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	a.Status = status
	return a
}
