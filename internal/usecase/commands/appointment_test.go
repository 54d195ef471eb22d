//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"
	"github.com/TARIFUDDIN/swasthalink/tests/common/builder"
	commandsmock "github.com/TARIFUDDIN/swasthalink/tests/mock/commands"
	sharedmock "github.com/TARIFUDDIN/swasthalink/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	appointments  *sharedmock.MockAppointmentRepository
	notifications *sharedmock.MockNotificationRepository
	reads         *sharedmock.MockCommandReads
	resolver      *commandsmock.MockSlotResolver
	clock         *clock.MockClock
	uc            commands.AppointmentCommands
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.appointments = sharedmock.NewMockAppointmentRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.resolver = commandsmock.NewMockSlotResolver(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2030, time.January, 1, 10, 0, 0, 0, time.UTC))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Appointments().Return(s.appointments).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()

	services := &appointment.Services{
		Clock:  s.clock,
		Policy: appointment.BookingPolicy{HorizonDays: 30, Location: time.UTC},
		Room:   appointment.VideoRoom{BaseURL: "https://meet.example.test/", Prefix: "swasthalink"},
	}
	s.uc = commands.NewAppointmentCommands(s.uow, s.resolver, services)
}

func (s *AppointmentCommandsTestSuite) TestCreate() {
	patientID := uuid.New()
	req := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
	date := availability.NewDate(2030, time.January, 7)

	s.Run("books a free slot and queues the booking job", func() {
		var stored *appointment.Appointment
		s.resolver.EXPECT().Resolve(gomock.Any(), req.DoctorID, date).Return([]string{"09:00", "10:00"}, nil)
		s.appointments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, a *appointment.Appointment) (uuid.UUID, error) {
				stored = a
				return a.ID(), nil
			})
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), commands.JobAppointmentBooked, gomock.Any(), gomock.Any(), s.clock.Now()).
			DoAndReturn(func(_ context.Context, _ any, _, topic string, payload []byte, _ time.Time) error {
				var body map[string]any
				s.Require().NoError(json.Unmarshal(payload, &body))
				s.Equal("2030-01-07", body["date"])
				s.Equal("10:00", body["time"])
				s.Equal("appointment:"+stored.ID().String(), topic)
				return nil
			})

		id, err := s.uc.Create(context.Background(), req, patientID)
		s.Require().NoError(err)
		s.Equal(stored.ID(), id)
		s.Equal(appointment.StatusScheduled, stored.Status())
		s.Equal("https://meet.example.test/swasthalink-"+id.String(), stored.MeetingURL())
	})

	s.Run("slot not offered by the resolver", func() {
		s.resolver.EXPECT().Resolve(gomock.Any(), req.DoctorID, date).Return([]string{"09:00"}, nil)

		_, err := s.uc.Create(context.Background(), req, patientID)
		s.ErrorIs(err, appointment.ErrSlotUnavailable)
	})

	s.Run("losing a race on the unique index", func() {
		s.resolver.EXPECT().Resolve(gomock.Any(), req.DoctorID, date).Return([]string{"10:00"}, nil)
		s.appointments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("slot taken", errors.New("23505"), infra.KindDuplicateKey))

		_, err := s.uc.Create(context.Background(), req, patientID)
		s.ErrorIs(err, appointment.ErrSlotUnavailable)
	})

	s.Run("unknown doctor surfaces from the resolver", func() {
		s.resolver.EXPECT().Resolve(gomock.Any(), req.DoctorID, date).Return(nil, queries.ErrDoctorNotFound)

		_, err := s.uc.Create(context.Background(), req, patientID)
		s.ErrorIs(err, queries.ErrDoctorNotFound)
	})

	s.Run("booking rules", func() {
		testCases := []struct {
			name    string
			date    string
			patient uuid.UUID
			wantErr error
		}{
			{name: "date in the past", date: "2029-12-31", patient: patientID, wantErr: appointment.ErrDateInPast},
			{name: "beyond horizon", date: "2030-02-01", patient: patientID, wantErr: appointment.ErrDateBeyondHorizon},
			{name: "doctor booking themselves", date: "2030-01-07", patient: req.DoctorID, wantErr: appointment.ErrSelfBooking},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				r := req
				r.Date = tc.date
				d, _ := availability.ParseDate(tc.date)
				s.resolver.EXPECT().Resolve(gomock.Any(), req.DoctorID, d).Return([]string{"10:00"}, nil)

				_, err := s.uc.Create(context.Background(), r, tc.patient)
				s.ErrorIs(err, tc.wantErr)
			})
		}
	})

	s.Run("unparseable date is rejected before resolving", func() {
		r := req
		r.Date = "next monday"

		_, err := s.uc.Create(context.Background(), r, patientID)
		s.ErrorIs(err, commands.ErrInvalidAppointment)
	})
}

func (s *AppointmentCommandsTestSuite) TestCancel() {
	b := builder.NewAppointmentBuilder()

	s.Run("participant cancels and the cancellation job is queued", func() {
		s.reads.EXPECT().AppointmentByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.appointments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), appointment.StatusScheduled).
			DoAndReturn(func(_ context.Context, _ any, a *appointment.Appointment, _ appointment.Status) error {
				s.Equal(appointment.StatusCancelled, a.Status())
				return nil
			})
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), commands.JobAppointmentCancelled, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		s.NoError(s.uc.Cancel(context.Background(), b.ID, b.PatientID, user.RolePatient))
	})

	s.Run("admin may cancel any booking", func() {
		s.reads.EXPECT().AppointmentByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.appointments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		s.NoError(s.uc.Cancel(context.Background(), b.ID, uuid.New(), user.RoleAdmin))
	})

	s.Run("outsider is forbidden", func() {
		s.reads.EXPECT().AppointmentByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := s.uc.Cancel(context.Background(), b.ID, uuid.New(), user.RolePatient)
		s.ErrorIs(err, commands.ErrAppointmentForbidden)
	})

	s.Run("already cancelled", func() {
		snap := builder.NewAppointmentBuilder().WithStatus("cancelled").BuildSnapshot()
		s.reads.EXPECT().AppointmentByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := s.uc.Cancel(context.Background(), snap.ID, snap.PatientID, user.RolePatient)
		s.ErrorIs(err, appointment.ErrInvalidTransition)
	})

	s.Run("concurrent status change loses the conditional update", func() {
		s.reads.EXPECT().AppointmentByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.appointments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("status changed", nil, infra.KindConflict))

		err := s.uc.Cancel(context.Background(), b.ID, b.PatientID, user.RolePatient)
		s.ErrorIs(err, appointment.ErrInvalidTransition)
	})

	s.Run("missing appointment", func() {
		id := uuid.New()
		s.reads.EXPECT().AppointmentByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		err := s.uc.Cancel(context.Background(), id, uuid.New(), user.RolePatient)
		s.ErrorIs(err, commands.ErrAppointmentNotFoundWrite)
	})
}

func (s *AppointmentCommandsTestSuite) TestComplete() {
	b := builder.NewAppointmentBuilder()

	s.Run("doctor of the booking completes it", func() {
		s.reads.EXPECT().AppointmentByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.appointments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), appointment.StatusScheduled).
			DoAndReturn(func(_ context.Context, _ any, a *appointment.Appointment, _ appointment.Status) error {
				s.Equal(appointment.StatusCompleted, a.Status())
				return nil
			})

		s.NoError(s.uc.Complete(context.Background(), b.ID, b.DoctorID))
	})

	s.Run("patient cannot complete", func() {
		s.reads.EXPECT().AppointmentByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := s.uc.Complete(context.Background(), b.ID, b.PatientID)
		s.ErrorIs(err, commands.ErrAppointmentForbidden)
	})
}
