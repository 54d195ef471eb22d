//go:build unit || e2e

package builder

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/google/uuid"
)

type DoctorBuilder struct {
	ID             uuid.UUID
	Email          string
	FirstName      string
	LastName       string
	Specialization string
	Experience     int
	Languages      []string
	Schedule       map[string][]string
}

func NewDoctorBuilder() *DoctorBuilder {
	return &DoctorBuilder{
		ID:             uuid.New(),
		Email:          "dr.sharma@example.com",
		FirstName:      "Anil",
		LastName:       "Sharma",
		Specialization: "General Physician",
		Experience:     12,
		Languages:      []string{"Hindi", "Punjabi"},
		Schedule: map[string][]string{
			"monday": {"09:00", "10:00", "11:00"},
		},
	}
}

func (d *DoctorBuilder) With(mutate func(*DoctorBuilder)) *DoctorBuilder {
	mutate(d)
	return d
}

func (d *DoctorBuilder) BuildTemplate() availability.Template {
	return availability.ReconstructTemplate(d.Schedule)
}

func (d *DoctorBuilder) BuildView() *queries.DoctorView {
	return &queries.DoctorView{
		ID:             d.ID,
		Email:          d.Email,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Specialization: d.Specialization,
		Experience:     d.Experience,
		Languages:      d.Languages,
		Availability:   d.BuildTemplate(),
	}
}

func (d *DoctorBuilder) BuildListItem(booked ...string) *queries.DoctorListItem {
	if booked == nil {
		booked = []string{}
	}
	return &queries.DoctorListItem{DoctorView: *d.BuildView(), BookedSlots: booked}
}

func (d *DoctorBuilder) WithSchedule(schedule map[string][]string) *DoctorBuilder {
	d.Schedule = schedule
	return d
}
