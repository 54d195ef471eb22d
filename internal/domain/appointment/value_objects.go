package appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxSymptomsLength = 2000

type Symptoms struct {
	text string
}

// NewSymptoms allows an empty description.
func NewSymptoms(s string) (Symptoms, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxSymptomsLength {
		return Symptoms{}, ErrSymptomsTooLong
	}
	return Symptoms{text: t}, nil
}

func (s Symptoms) String() string { return s.text }

// BookingPolicy bounds how far ahead a patient may book. Today is
// evaluated in Location.
type BookingPolicy struct {
	HorizonDays int
	Location    *time.Location
}

// VideoRoom derives the per-appointment meeting link.
type VideoRoom struct {
	BaseURL string
	Prefix  string
}

func (v VideoRoom) URLFor(appointmentID uuid.UUID) string {
	return fmt.Sprintf("%s/%s-%s", strings.TrimRight(v.BaseURL, "/"), v.Prefix, appointmentID)
}
