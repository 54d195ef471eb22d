//go:build unit

package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/doctor"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/seed"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"
	sharedmock "github.com/TARIFUDDIN/swasthalink/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var seededAt = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

func newSeeder(ctrl *gomock.Controller) (*seed.Seeder, *sharedmock.MockTx) {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return seed.NewSeeder(uow, clock.NewMockClock(seededAt), logger), tx
}

func TestSeeder_Run(t *testing.T) {
	t.Run("existing accounts are skipped and doctors get the default week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, tx := newSeeder(ctrl)

		users := sharedmock.NewMockUserRepository(ctrl)
		doctors := sharedmock.NewMockDoctorRepository(ctrl)
		pharmacies := sharedmock.NewMockPharmacyRepository(ctrl)
		tx.EXPECT().Users().Return(users).Times(2)
		tx.EXPECT().Doctors().Return(doctors)
		tx.EXPECT().Pharmacies().Return(pharmacies).Times(3)

		users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) (uuid.UUID, error) {
				assert.Equal(t, user.RolePatient, u.Role())
				assert.Equal(t, seededAt, u.CreatedAt())
				return u.ID(), nil
			})
		users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505"}))

		doctors.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, d *doctor.Doctor) (uuid.UUID, error) {
				assert.Equal(t, user.RoleDoctor, d.Account().Role())
				assert.Equal(t, []string{"09:00", "10:00", "11:00"}, d.Schedule().Slots(availability.Saturday))
				assert.Empty(t, d.Schedule().Slots(availability.Sunday))
				return d.ID(), nil
			})

		pharmacyID := uuid.New()
		pharmacies.EXPECT().Create(gomock.Any(), gomock.Any(), shared.PharmacyInput{Name: "Nabha Medical Store", Village: "Nabha"}).
			Return(pharmacyID, nil)
		pharmacies.EXPECT().SetStock(gomock.Any(), gomock.Any(), pharmacyID, "Paracetamol 500mg", int32(120)).Return(nil)
		pharmacies.EXPECT().SetStock(gomock.Any(), gomock.Any(), pharmacyID, "ORS Sachet", int32(0)).Return(nil)

		data := seed.Data{
			Accounts: []seed.Account{
				{Email: "new@swasthalink.in", FirstName: "Navdeep", LastName: "Singh"},
				{Email: "old@swasthalink.in", FirstName: "Old", LastName: "Account"},
			},
			Doctors: []seed.DoctorSeed{
				{Account: seed.Account{Email: "dr.new@swasthalink.in", FirstName: "Neha", LastName: "Bedi"}, Specialization: "ENT", Experience: 3},
			},
			Pharmacies: []seed.PharmacySeed{
				{
					PharmacyInput: shared.PharmacyInput{Name: "Nabha Medical Store", Village: "Nabha"},
					Stock:         map[string]int32{"Paracetamol 500mg": 120, "ORS Sachet": 0},
				},
			},
		}

		res, err := s.Run(context.Background(), data, "seed-password")
		require.NoError(t, err)
		assert.Equal(t, seed.Result{Accounts: 1, Doctors: 1, Pharmacies: 1}, res)
	})

	t.Run("weak password stops before touching the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, _ := newSeeder(ctrl)

		_, err := s.Run(context.Background(), seed.Default, "short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("invalid account email is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, _ := newSeeder(ctrl)

		data := seed.Data{Accounts: []seed.Account{{Email: "not-an-email", FirstName: "A", LastName: "B"}}}
		_, err := s.Run(context.Background(), data, "seed-password")
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("database failure aborts the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, tx := newSeeder(ctrl)

		users := sharedmock.NewMockUserRepository(ctrl)
		tx.EXPECT().Users().Return(users)
		users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create user", assert.AnError))

		data := seed.Data{Accounts: []seed.Account{{Email: "a@swasthalink.in", FirstName: "A", LastName: "B"}}}
		res, err := s.Run(context.Background(), data, "seed-password")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Zero(t, res.Accounts)
	})
}
