//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"
	queriesmock "github.com/TARIFUDDIN/swasthalink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	monday    = availability.NewDate(2030, time.January, 7)
	wednesday = availability.NewDate(2030, time.January, 9)
)

func TestAvailabilityQueries_Resolve(t *testing.T) {
	doctorID := uuid.New()
	template := availability.ReconstructTemplate(map[string][]string{
		"monday":  {"11:00", "09:00", "10:00"},
		"tuesday": {},
	})

	tests := []struct {
		name     string
		date     availability.Date
		template availability.Template
		occupied []string
		want     []string
	}{
		{name: "no reservations keeps template order", date: monday, template: template, want: []string{"11:00", "09:00", "10:00"}},
		{name: "reserved labels are removed", date: monday, template: template, occupied: []string{"09:00"}, want: []string{"11:00", "10:00"}},
		{name: "fully booked day is empty", date: monday, template: template, occupied: []string{"09:00", "10:00", "11:00"}, want: []string{}},
		{name: "labels outside the template are ignored", date: monday, template: template, occupied: []string{"15:30", "10:00"}, want: []string{"11:00", "09:00"}},
		{name: "duplicate reservations collapse", date: monday, template: template, occupied: []string{"10:00", "10:00"}, want: []string{"11:00", "09:00"}},
		{name: "weekday missing from template", date: wednesday, template: template, want: []string{}},
		{name: "doctor without schedule", date: monday, template: availability.Template{}, occupied: []string{"09:00"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			directory := queriesmock.NewMockDirectoryStore(ctrl)
			reservations := queriesmock.NewMockReservationStore(ctrl)

			directory.EXPECT().GetTemplate(gomock.Any(), doctorID).Return(tt.template, nil)
			reservations.EXPECT().ListActiveReservations(gomock.Any(), doctorID, tt.date).Return(tt.occupied, nil)

			got, err := queries.NewAvailabilityQueries(directory, reservations).Resolve(context.Background(), doctorID, tt.date)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailabilityQueries_ResolveIsSubsequenceOfTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := queriesmock.NewMockDirectoryStore(ctrl)
	reservations := queriesmock.NewMockReservationStore(ctrl)

	labels := []string{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30"}
	template := availability.ReconstructTemplate(map[string][]string{"monday": labels})
	doctorID := uuid.New()

	for mask := range 1 << len(labels) {
		var occupied []string
		for i, l := range labels {
			if mask&(1<<i) != 0 {
				occupied = append(occupied, l)
			}
		}
		directory.EXPECT().GetTemplate(gomock.Any(), doctorID).Return(template, nil)
		reservations.EXPECT().ListActiveReservations(gomock.Any(), doctorID, monday).Return(occupied, nil)

		got, err := queries.NewAvailabilityQueries(directory, reservations).Resolve(context.Background(), doctorID, monday)
		require.NoError(t, err)
		require.Len(t, got, len(labels)-len(occupied))

		j := 0
		for _, l := range labels {
			if j < len(got) && got[j] == l {
				j++
			}
		}
		require.Equal(t, len(got), j, "result must keep template order")
		for _, l := range got {
			require.NotContains(t, occupied, l)
		}
	}
}

func TestAvailabilityQueries_ResolveErrors(t *testing.T) {
	doctorID := uuid.New()
	storeErr := errors.New("connection refused")

	t.Run("unknown doctor maps to ErrDoctorNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := queriesmock.NewMockDirectoryStore(ctrl)
		reservations := queriesmock.NewMockReservationStore(ctrl)
		directory.EXPECT().GetTemplate(gomock.Any(), doctorID).
			Return(availability.Template{}, infra.WrapRepoErr("doctor not found", nil, infra.KindNotFound))

		_, err := queries.NewAvailabilityQueries(directory, reservations).Resolve(context.Background(), doctorID, monday)
		require.ErrorIs(t, err, queries.ErrDoctorNotFound)
	})

	t.Run("directory failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := queriesmock.NewMockDirectoryStore(ctrl)
		reservations := queriesmock.NewMockReservationStore(ctrl)
		directory.EXPECT().GetTemplate(gomock.Any(), doctorID).Return(availability.Template{}, storeErr)

		_, err := queries.NewAvailabilityQueries(directory, reservations).Resolve(context.Background(), doctorID, monday)
		require.ErrorIs(t, err, storeErr)
		require.NotErrorIs(t, err, queries.ErrDoctorNotFound)
	})

	t.Run("reservation failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := queriesmock.NewMockDirectoryStore(ctrl)
		reservations := queriesmock.NewMockReservationStore(ctrl)
		directory.EXPECT().GetTemplate(gomock.Any(), doctorID).Return(availability.Template{}, nil)
		reservations.EXPECT().ListActiveReservations(gomock.Any(), doctorID, monday).Return(nil, storeErr)

		_, err := queries.NewAvailabilityQueries(directory, reservations).Resolve(context.Background(), doctorID, monday)
		require.ErrorIs(t, err, storeErr)
	})
}
