package response

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DoctorResponse struct {
	ID             uuid.UUID             `json:"id"`
	Email          string                `json:"email"`
	FirstName      string                `json:"firstName"`
	LastName       string                `json:"lastName"`
	Specialization string                `json:"specialization"`
	Experience     int                   `json:"experience"`
	Languages      []string              `json:"languages"`
	Availability   availability.Template `json:"availability"`
}

type DoctorListItemResponse struct {
	DoctorResponse
	BookedSlots []string `json:"bookedSlots"`
}

type AvailabilityResponse struct {
	DoctorID       uuid.UUID `json:"doctorId"`
	Date           string    `json:"date"`
	Weekday        string    `json:"weekday"`
	AvailableSlots []string  `json:"availableSlots"`
}

func FromDoctorView(v *queries.DoctorView) *DoctorResponse {
	var res DoctorResponse
	_ = copier.Copy(&res, v)
	res.Availability = v.Availability
	return &res
}

func FromDoctorList(items []*queries.DoctorListItem) []*DoctorListItemResponse {
	res := make([]*DoctorListItemResponse, len(items))
	for i, it := range items {
		res[i] = &DoctorListItemResponse{
			DoctorResponse: *FromDoctorView(&it.DoctorView),
			BookedSlots:    it.BookedSlots,
		}
	}
	return res
}

func NewAvailabilityResponse(doctorID uuid.UUID, date availability.Date, slots []string) *AvailabilityResponse {
	if slots == nil {
		slots = []string{}
	}
	return &AvailabilityResponse{
		DoctorID:       doctorID,
		Date:           date.String(),
		Weekday:        date.Weekday().String(),
		AvailableSlots: slots,
	}
}
