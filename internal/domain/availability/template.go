package availability

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidTimeLabel   = errors.New("time label must be HH:MM")
	ErrDuplicateTimeLabel = errors.New("duplicate time label")
)

var timeLabelPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func IsTimeLabel(s string) bool {
	return timeLabelPattern.MatchString(s)
}

// Template is a doctor's recurring weekly schedule: for each weekday,
// the ordered time labels the doctor is willing to see patients.
type Template struct {
	days [daysInWeek][]string
}

// NewTemplate validates a weekday-keyed map as submitted by a doctor.
// Keys are case-insensitive; missing weekdays mean no slots.
func NewTemplate(m map[string][]string) (Template, error) {
	var t Template
	for key, labels := range m {
		w, err := ParseWeekday(key)
		if err != nil {
			return Template{}, err
		}
		seen := make(map[string]struct{}, len(labels))
		day := make([]string, 0, len(labels))
		for _, raw := range labels {
			label := strings.TrimSpace(raw)
			if !IsTimeLabel(label) {
				return Template{}, ErrInvalidTimeLabel
			}
			if _, dup := seen[label]; dup {
				return Template{}, ErrDuplicateTimeLabel
			}
			seen[label] = struct{}{}
			day = append(day, label)
		}
		t.days[w] = day
	}
	return t, nil
}

// ReconstructTemplate rebuilds a stored template without rejecting it:
// unknown keys are skipped and repeated labels keep their first position.
func ReconstructTemplate(m map[string][]string) Template {
	var t Template
	for key, labels := range m {
		w, err := ParseWeekday(key)
		if err != nil {
			continue
		}
		seen := make(map[string]struct{}, len(labels))
		day := make([]string, 0, len(labels))
		for _, label := range labels {
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			day = append(day, label)
		}
		t.days[w] = day
	}
	return t
}

// Slots returns a copy of the labels configured for w.
func (t Template) Slots(w Weekday) []string {
	if !w.IsValid() {
		return []string{}
	}
	out := make([]string, len(t.days[w]))
	copy(out, t.days[w])
	return out
}

func (t Template) IsEmpty() bool {
	for _, day := range t.days {
		if len(day) > 0 {
			return false
		}
	}
	return true
}

// Available removes occupied labels from the labels of w, keeping the
// template's order. Occupied labels the template does not list are ignored.
func (t Template) Available(w Weekday, occupied []string) []string {
	if !w.IsValid() {
		return []string{}
	}
	taken := make(map[string]struct{}, len(occupied))
	for _, label := range occupied {
		taken[label] = struct{}{}
	}
	free := make([]string, 0, len(t.days[w]))
	for _, label := range t.days[w] {
		if _, ok := taken[label]; !ok {
			free = append(free, label)
		}
	}
	return free
}

// ToMap always carries all seven weekday keys.
func (t Template) ToMap() map[string][]string {
	m := make(map[string][]string, daysInWeek)
	for _, w := range Weekdays() {
		m[w.String()] = t.Slots(w)
	}
	return m
}

// MarshalJSON writes the weekdays Monday first.
func (t Template) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, w := range Weekdays() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(w.String())
		labels, err := json.Marshal(t.Slots(w))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(labels)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *Template) UnmarshalJSON(b []byte) error {
	var m map[string][]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*t = ReconstructTemplate(m)
	return nil
}

// DefaultTemplate is handed to newly onboarded doctors.
func DefaultTemplate() Template {
	return ReconstructTemplate(map[string][]string{
		"monday":    {"09:00", "10:00", "11:00", "14:00", "15:00"},
		"tuesday":   {"09:00", "10:00", "14:00", "15:00", "16:00"},
		"wednesday": {"09:00", "10:00", "11:00", "14:00"},
		"thursday":  {"10:00", "11:00", "14:00", "15:00", "16:00"},
		"friday":    {"09:00", "10:00", "11:00", "14:00", "15:00"},
		"saturday":  {"09:00", "10:00", "11:00"},
	})
}
