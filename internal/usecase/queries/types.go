package queries

import (
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"

	"github.com/google/uuid"
)

// DoctorView represents read-optimized doctor profile data
type DoctorView struct {
	ID             uuid.UUID
	Email          string
	FirstName      string
	LastName       string
	Specialization string
	Experience     int
	Languages      []string
	Availability   availability.Template
}

type DoctorListItem struct {
	DoctorView
	// BookedSlots are "YYYY-MM-DD-HH:MM" labels of scheduled appointments.
	BookedSlots []string
}

type AppointmentView struct {
	ID                   uuid.UUID
	PatientID            uuid.UUID
	DoctorID             uuid.UUID
	Date                 availability.Date
	Time                 string
	Symptoms             string
	MeetingURL           string
	Status               string
	DoctorName           string
	DoctorSpecialization string
	PatientName          string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type HealthRecordView struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
	Diagnosis  string
	Medicines  []string
	Notes      string
	DoctorName string
	CreatedAt  time.Time
}

type MedicineStockView struct {
	ID    uuid.UUID
	Name  string
	Stock int32
}

type PharmacyStockView struct {
	ID        uuid.UUID
	Name      string
	Village   string
	Address   string
	Phone     string
	Medicines []MedicineStockView
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID
	Email     string
	Role      string
	FirstName string
	LastName  string
	LastLogin *time.Time
	IsActive  bool
}

// BookedSlotLabel joins a date and a time label the way the doctor
// directory exposes them.
func BookedSlotLabel(date availability.Date, timeLabel string) string {
	return date.String() + "-" + timeLabel
}
