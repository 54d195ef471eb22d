package converter

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ID:         a.ID(),
		PatientID:  a.PatientID(),
		DoctorID:   a.DoctorID(),
		Date:       pgconv.DateToPgtype(a.Date().Time()),
		Time:       a.Time(),
		Symptoms:   a.Symptoms().String(),
		MeetingUrl: a.MeetingURL(),
		CreatedAt:  pgconv.TimeToPgtype(a.CreatedAt()),
	}
}

func AppointmentToStatusParams(a *appointment.Appointment, from appointment.Status) sqlc.UpdateAppointmentStatusParams {
	return sqlc.UpdateAppointmentStatusParams{
		ToStatus:   a.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(a.UpdatedAt()),
		ID:         a.ID(),
		FromStatus: from.String(),
	}
}
