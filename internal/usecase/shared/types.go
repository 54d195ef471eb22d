package shared

import (
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type AppointmentSnapshot struct {
	ID         uuid.UUID
	PatientID  uuid.UUID
	DoctorID   uuid.UUID
	Date       availability.Date
	Time       string
	Symptoms   string
	MeetingURL string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PharmacyInput struct {
	Name    string
	Village string
	Address string
	Phone   string
}
