//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

func newServices(now time.Time) *appointment.Services {
	return &appointment.Services{
		Clock:  clock.NewMockClock(now),
		Policy: appointment.BookingPolicy{HorizonDays: 30, Location: ist},
		Room:   appointment.VideoRoom{BaseURL: "https://meet.jit.si/", Prefix: "swasthalink"},
	}
}

func TestNewAppointment(t *testing.T) {
	// 2030-01-01 20:00 UTC is already 2030-01-02 in India
	now := time.Date(2030, time.January, 1, 20, 0, 0, 0, time.UTC)
	patient, doctor := uuid.New(), uuid.New()
	free := []string{"09:00", "10:00"}

	tests := []struct {
		name    string
		patient uuid.UUID
		slot    appointment.Slot
		errIs   error
	}{
		{
			name:    "local today is bookable",
			patient: patient,
			slot:    appointment.Slot{Date: availability.NewDate(2030, time.January, 2), Time: "09:00", FreeSlots: free},
		},
		{
			name:    "horizon end is bookable",
			patient: patient,
			slot:    appointment.Slot{Date: availability.NewDate(2030, time.February, 1), Time: "10:00", FreeSlots: free},
		},
		{
			name:    "UTC today is local yesterday",
			patient: patient,
			slot:    appointment.Slot{Date: availability.NewDate(2030, time.January, 1), Time: "09:00", FreeSlots: free},
			errIs:   appointment.ErrDateInPast,
		},
		{
			name:    "one day past the horizon",
			patient: patient,
			slot:    appointment.Slot{Date: availability.NewDate(2030, time.February, 2), Time: "09:00", FreeSlots: free},
			errIs:   appointment.ErrDateBeyondHorizon,
		},
		{
			name:    "label not free",
			patient: patient,
			slot:    appointment.Slot{Date: availability.NewDate(2030, time.January, 3), Time: "11:00", FreeSlots: free},
			errIs:   appointment.ErrSlotUnavailable,
		},
		{
			name:    "malformed label",
			patient: patient,
			slot:    appointment.Slot{Date: availability.NewDate(2030, time.January, 3), Time: "9am", FreeSlots: free},
			errIs:   appointment.ErrInvalidTimeLabel,
		},
		{
			name:    "doctor books self",
			patient: doctor,
			slot:    appointment.Slot{Date: availability.NewDate(2030, time.January, 3), Time: "09:00", FreeSlots: free},
			errIs:   appointment.ErrSelfBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := appointment.NewAppointment(newServices(now), tt.patient, doctor, tt.slot, appointment.Symptoms{})
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, appointment.StatusScheduled, a.Status())
			assert.Equal(t, tt.slot.Time, a.Time())
			assert.True(t, a.Date().Equal(tt.slot.Date))
			assert.Equal(t, "https://meet.jit.si/swasthalink-"+a.ID().String(), a.MeetingURL())
			assert.True(t, a.CreatedAt().Equal(now))
		})
	}
}

func TestAppointmentTransitions(t *testing.T) {
	created := time.Date(2030, time.January, 1, 9, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	patient, doctor := uuid.New(), uuid.New()

	newScheduled := func() *appointment.Appointment {
		return appointment.ReconstructAppointment(
			uuid.New(), patient, doctor,
			availability.NewDate(2030, time.January, 7), "09:00",
			appointment.Symptoms{}, "https://meet.jit.si/x",
			appointment.StatusScheduled, created, created,
		)
	}

	t.Run("cancel releases the slot", func(t *testing.T) {
		a := newScheduled()
		require.NoError(t, a.Cancel(later))
		assert.Equal(t, appointment.StatusCancelled, a.Status())
		assert.False(t, a.Status().IsActive())
		assert.Equal(t, later, a.UpdatedAt())
	})

	t.Run("complete", func(t *testing.T) {
		a := newScheduled()
		require.NoError(t, a.Complete(later))
		assert.Equal(t, appointment.StatusCompleted, a.Status())
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		a := newScheduled()
		require.NoError(t, a.Cancel(later))
		require.ErrorIs(t, a.Cancel(later), appointment.ErrInvalidTransition)
		require.ErrorIs(t, a.Complete(later), appointment.ErrInvalidTransition)
		assert.Equal(t, appointment.StatusCancelled, a.Status())
	})

	t.Run("participants", func(t *testing.T) {
		a := newScheduled()
		assert.True(t, a.IsParticipant(patient))
		assert.True(t, a.IsParticipant(doctor))
		assert.False(t, a.IsParticipant(uuid.New()))
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "completed", "cancelled"} {
		st, err := appointment.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}
	_, err := appointment.ParseStatus("SCHEDULED")
	require.ErrorIs(t, err, appointment.ErrInvalidStatus)
}

func TestNewSymptoms(t *testing.T) {
	s, err := appointment.NewSymptoms("  fever  ")
	require.NoError(t, err)
	assert.Equal(t, "fever", s.String())

	_, err = appointment.NewSymptoms(strings.Repeat("x", appointment.MaxSymptomsLength+1))
	require.ErrorIs(t, err, appointment.ErrSymptomsTooLong)
}
