package healthrecord

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxDiagnosisLength = 500
	MaxNotesLength     = 2000
	MaxMedicines       = 50
)

var (
	ErrEmptyDiagnosis   = errors.New("diagnosis cannot be empty")
	ErrDiagnosisTooLong = errors.New("diagnosis exceeds maximum length")
	ErrNotesTooLong     = errors.New("notes exceed maximum length")
	ErrTooManyMedicines = errors.New("too many medicines")
)

type Record struct {
	id         uuid.UUID
	userID     uuid.UUID
	date       time.Time
	diagnosis  string
	medicines  []string
	notes      string
	doctorName string
	createdAt  time.Time
}

func NewRecord(userID uuid.UUID, diagnosis string, medicines []string, notes, doctorName string, now time.Time) (*Record, error) {
	diagnosis = strings.TrimSpace(diagnosis)
	if diagnosis == "" {
		return nil, ErrEmptyDiagnosis
	}
	if utf8.RuneCountInString(diagnosis) > MaxDiagnosisLength {
		return nil, ErrDiagnosisTooLong
	}
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	meds := make([]string, 0, len(medicines))
	for _, m := range medicines {
		if m = strings.TrimSpace(m); m != "" {
			meds = append(meds, m)
		}
	}
	if len(meds) > MaxMedicines {
		return nil, ErrTooManyMedicines
	}

	return &Record{
		id:         uuid.New(),
		userID:     userID,
		date:       now,
		diagnosis:  diagnosis,
		medicines:  meds,
		notes:      notes,
		doctorName: strings.TrimSpace(doctorName),
		createdAt:  now,
	}, nil
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) UserID() uuid.UUID    { return r.userID }
func (r *Record) Date() time.Time      { return r.date }
func (r *Record) Diagnosis() string    { return r.diagnosis }
func (r *Record) Medicines() []string  { return r.medicines }
func (r *Record) Notes() string        { return r.notes }
func (r *Record) DoctorName() string   { return r.doctorName }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
