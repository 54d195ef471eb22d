package request

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
)

// UpdateAvailabilityRequest is a weekday-keyed object, e.g.
// {"monday": ["09:00", "10:00"], "friday": ["14:00"]}.
type UpdateAvailabilityRequest map[string][]string

func (r UpdateAvailabilityRequest) ToDomain() (availability.Template, error) {
	return availability.NewTemplate(r)
}
