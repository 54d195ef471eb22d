package commands

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"

	"github.com/google/uuid"
)

// SlotResolver is the availability check the booking path consults.
type SlotResolver interface {
	Resolve(ctx context.Context, doctorID uuid.UUID, date availability.Date) ([]string, error)
}

// Outbox job kinds written alongside appointment changes.
const (
	JobAppointmentBooked    = "appointment_booked"
	JobAppointmentCancelled = "appointment_cancelled"
)

type appointmentJobPayload struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	PatientID     uuid.UUID `json:"patientId"`
	DoctorID      uuid.UUID `json:"doctorId"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	MeetingURL    string    `json:"meetingUrl,omitempty"`
}
