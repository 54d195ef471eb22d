//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"
	sharedmock "github.com/TARIFUDDIN/swasthalink/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTxUoW(ctrl *gomock.Controller) (*sharedmock.MockUnitOfWork, *sharedmock.MockTx) {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	return uow, tx
}

func TestDoctorCommands_UpdateAvailability(t *testing.T) {
	doctorID := uuid.New()
	now := time.Date(2030, time.January, 1, 8, 0, 0, 0, time.UTC)

	t.Run("stores the parsed template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, tx := newTxUoW(ctrl)
		doctors := sharedmock.NewMockDoctorRepository(ctrl)
		tx.EXPECT().Doctors().Return(doctors)

		doctors.EXPECT().UpdateAvailability(gomock.Any(), gomock.Any(), doctorID, gomock.Any(), now).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, tpl availability.Template, _ time.Time) error {
				assert.Equal(t, []string{"14:00", "09:00"}, tpl.Slots(availability.Friday))
				assert.Empty(t, tpl.Slots(availability.Monday))
				return nil
			})

		req := reqdto.UpdateAvailabilityRequest{"Friday": {"14:00", "09:00"}}
		require.NoError(t, commands.NewDoctorCommands(uow, clock.NewMockClock(now)).UpdateAvailability(context.Background(), doctorID, req))
	})

	t.Run("rejects malformed schedules without touching storage", func(t *testing.T) {
		for name, req := range map[string]reqdto.UpdateAvailabilityRequest{
			"unknown weekday": {"someday": {"09:00"}},
			"bad label":       {"monday": {"9am"}},
			"duplicate label": {"monday": {"09:00", "09:00"}},
		} {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				uow := sharedmock.NewMockUnitOfWork(ctrl)

				err := commands.NewDoctorCommands(uow, clock.NewMockClock(now)).UpdateAvailability(context.Background(), doctorID, req)
				require.ErrorIs(t, err, commands.ErrInvalidSchedule)
			})
		}
	})

	t.Run("unknown doctor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, tx := newTxUoW(ctrl)
		doctors := sharedmock.NewMockDoctorRepository(ctrl)
		tx.EXPECT().Doctors().Return(doctors)
		doctors.EXPECT().UpdateAvailability(gomock.Any(), gomock.Any(), doctorID, gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("doctor not found", nil, infra.KindNotFound))

		err := commands.NewDoctorCommands(uow, clock.NewMockClock(now)).UpdateAvailability(context.Background(), doctorID, reqdto.UpdateAvailabilityRequest{})
		require.ErrorIs(t, err, commands.ErrDoctorNotFoundCmd)
	})
}
