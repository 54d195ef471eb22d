package availability

import (
	"errors"
	"strings"
)

var ErrUnknownWeekday = errors.New("unknown weekday")

// Weekday is Monday-first and independent of the host locale.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysInWeek = 7

var weekdayKeys = [daysInWeek]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// String returns the template key for w.
func (w Weekday) String() string {
	if !w.IsValid() {
		return "invalid"
	}
	return weekdayKeys[w]
}

func ParseWeekday(s string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range weekdayKeys {
		if k == key {
			return Weekday(i), nil
		}
	}
	return 0, ErrUnknownWeekday
}

func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}
