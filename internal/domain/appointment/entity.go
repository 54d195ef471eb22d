package appointment

import (
	"errors"
	"slices"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrDateInPast        = errors.New("appointment date is in the past")
	ErrDateBeyondHorizon = errors.New("appointment date is beyond the booking horizon")
	ErrSlotUnavailable   = errors.New("time slot is not available")
	ErrSelfBooking       = errors.New("doctors cannot book themselves")
	ErrSymptomsTooLong   = errors.New("symptoms exceed maximum length")
	ErrInvalidTransition = errors.New("appointment is no longer scheduled")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTimeLabel  = errors.New("time must be HH:MM")
)

type Services struct {
	Clock  clock.Clock
	Policy BookingPolicy
	Room   VideoRoom
}

// Slot is the free-slot list the booking was checked against.
type Slot struct {
	Date      availability.Date
	Time      string
	FreeSlots []string
}

type Appointment struct {
	id         uuid.UUID
	patientID  uuid.UUID
	doctorID   uuid.UUID
	date       availability.Date
	time       string
	symptoms   Symptoms
	meetingURL string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAppointment(services *Services, patientID, doctorID uuid.UUID, slot Slot, symptoms Symptoms) (*Appointment, error) {
	if patientID == doctorID {
		return nil, ErrSelfBooking
	}
	if !availability.IsTimeLabel(slot.Time) {
		return nil, ErrInvalidTimeLabel
	}

	now := clock.NowIn(services.Clock, services.Policy.Location)
	today := availability.DateOf(now)
	if slot.Date.Before(today) {
		return nil, ErrDateInPast
	}
	if slot.Date.After(today.AddDays(services.Policy.HorizonDays)) {
		return nil, ErrDateBeyondHorizon
	}
	if !slices.Contains(slot.FreeSlots, slot.Time) {
		return nil, ErrSlotUnavailable
	}

	id := uuid.New()
	return &Appointment{
		id:         id,
		patientID:  patientID,
		doctorID:   doctorID,
		date:       slot.Date,
		time:       slot.Time,
		symptoms:   symptoms,
		meetingURL: services.Room.URLFor(id),
		status:     StatusScheduled,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAppointment(
	id, patientID, doctorID uuid.UUID,
	date availability.Date,
	timeLabel string,
	symptoms Symptoms,
	meetingURL string,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		patientID:  patientID,
		doctorID:   doctorID,
		date:       date,
		time:       timeLabel,
		symptoms:   symptoms,
		meetingURL: meetingURL,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Appointment) Cancel(now time.Time) error {
	return a.transition(StatusCancelled, now)
}

func (a *Appointment) Complete(now time.Time) error {
	return a.transition(StatusCompleted, now)
}

func (a *Appointment) transition(to Status, now time.Time) error {
	if !a.status.IsActive() {
		return ErrInvalidTransition
	}
	a.status = to
	a.updatedAt = now
	return nil
}

// IsParticipant reports whether userID is the patient or the doctor.
func (a *Appointment) IsParticipant(userID uuid.UUID) bool {
	return a.patientID == userID || a.doctorID == userID
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) PatientID() uuid.UUID    { return a.patientID }
func (a *Appointment) DoctorID() uuid.UUID     { return a.doctorID }
func (a *Appointment) Date() availability.Date { return a.date }
func (a *Appointment) Time() string            { return a.time }
func (a *Appointment) Symptoms() Symptoms      { return a.symptoms }
func (a *Appointment) MeetingURL() string      { return a.meetingURL }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }
