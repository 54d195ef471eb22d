package commands

import (
	"context"
	"encoding/json"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidAppointment       = errs.New("invalid appointment request")
	ErrAppointmentNotFoundWrite = errs.New("appointment not found")
	ErrAppointmentForbidden     = errs.New("not allowed to change this appointment")
)

type AppointmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateAppointmentRequest, patientID uuid.UUID) (uuid.UUID, error)
	Cancel(ctx context.Context, appointmentID, actorID uuid.UUID, actorRole user.Role) error
	Complete(ctx context.Context, appointmentID, actorID uuid.UUID) error
}

type appointmentCommandsImpl struct {
	uow      shared.UnitOfWork
	resolver SlotResolver
	services *appointment.Services
}

func NewAppointmentCommands(uow shared.UnitOfWork, resolver SlotResolver, services *appointment.Services) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:      uow,
		resolver: resolver,
		services: services,
	}
}

// Create books a slot the resolver currently reports as free. Two patients
// racing for the same slot both pass that check; the unique index on
// scheduled slots lets only one insert through.
func (uc *appointmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateAppointmentRequest, patientID uuid.UUID) (uuid.UUID, error) {
	date, symptoms, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAppointment)
	}

	free, err := uc.resolver.Resolve(ctx, req.DoctorID, date)
	if err != nil {
		return uuid.Nil, err
	}

	slot := appointment.Slot{Date: date, Time: req.Time, FreeSlots: free}
	a, err := appointment.NewAppointment(uc.services, patientID, req.DoctorID, slot, symptoms)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Appointments().Create(ctx, tx.DB(), a); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, appointment.ErrSlotUnavailable)
			}
			return derr
		}
		return uc.enqueue(ctx, tx, JobAppointmentBooked, a)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return a.ID(), nil
}

// Cancel is open to the patient, the doctor and admins.
func (uc *appointmentCommandsImpl) Cancel(ctx context.Context, appointmentID, actorID uuid.UUID, actorRole user.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := uc.load(ctx, tx, appointmentID)
		if err != nil {
			return err
		}
		if actorRole != user.RoleAdmin && !a.IsParticipant(actorID) {
			return ErrAppointmentForbidden
		}

		from := a.Status()
		if err := a.Cancel(uc.services.Clock.Now()); err != nil {
			return err
		}
		if err := uc.persistStatus(ctx, tx, a, from); err != nil {
			return err
		}
		return uc.enqueue(ctx, tx, JobAppointmentCancelled, a)
	})
}

func (uc *appointmentCommandsImpl) Complete(ctx context.Context, appointmentID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := uc.load(ctx, tx, appointmentID)
		if err != nil {
			return err
		}
		if a.DoctorID() != actorID {
			return ErrAppointmentForbidden
		}

		from := a.Status()
		if err := a.Complete(uc.services.Clock.Now()); err != nil {
			return err
		}
		return uc.persistStatus(ctx, tx, a, from)
	})
}

func (uc *appointmentCommandsImpl) load(ctx context.Context, tx shared.Tx, id uuid.UUID) (*appointment.Appointment, error) {
	snap, err := tx.Reads().AppointmentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFoundWrite
		}
		return nil, err
	}

	status, err := appointment.ParseStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	symptoms, _ := appointment.NewSymptoms(snap.Symptoms)

	return appointment.ReconstructAppointment(
		snap.ID, snap.PatientID, snap.DoctorID,
		snap.Date, snap.Time, symptoms, snap.MeetingURL,
		status, snap.CreatedAt, snap.UpdatedAt,
	), nil
}

func (uc *appointmentCommandsImpl) persistStatus(ctx context.Context, tx shared.Tx, a *appointment.Appointment, from appointment.Status) error {
	err := tx.Appointments().UpdateStatus(ctx, tx.DB(), a, from)
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, appointment.ErrInvalidTransition)
	}
	return err
}

func (uc *appointmentCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, a *appointment.Appointment) error {
	payload, err := json.Marshal(appointmentJobPayload{
		AppointmentID: a.ID(),
		PatientID:     a.PatientID(),
		DoctorID:      a.DoctorID(),
		Date:          a.Date().String(),
		Time:          a.Time(),
		MeetingURL:    a.MeetingURL(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	topic := "appointment:" + a.ID().String()
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, payload, uc.services.Clock.Now())
}
