//go:build unit

package readstore

import (
	"context"
	"testing"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDoctorViewQueries struct {
	mock.Mock
}

func (m *MockDoctorViewQueries) GetDoctorAvailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, db, id)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockDoctorViewQueries) GetDoctorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetDoctorByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetDoctorByIDRow), args.Error(1)
}

func (m *MockDoctorViewQueries) ListDoctors(ctx context.Context, db sqlc.DBTX, specialization pgtype.Text) ([]sqlc.ListDoctorsRow, error) {
	args := m.Called(ctx, db, specialization)
	rows, _ := args.Get(0).([]sqlc.ListDoctorsRow)
	return rows, args.Error(1)
}

func TestDoctorReadStore_GetTemplate(t *testing.T) {
	doctorID := uuid.New()

	tests := []struct {
		name      string
		raw       []byte
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantErr   bool
		check     func(t *testing.T, tmpl availability.Template)
	}{
		{
			name: "decodes stored schedule",
			raw:  []byte(`{"monday":["09:00","10:00"],"friday":["14:00"]}`),
			check: func(t *testing.T, tmpl availability.Template) {
				assert.Equal(t, []string{"09:00", "10:00"}, tmpl.Slots(availability.Monday))
				assert.Equal(t, []string{"14:00"}, tmpl.Slots(availability.Friday))
				assert.Empty(t, tmpl.Slots(availability.Sunday))
			},
		},
		{
			name: "null column is an empty schedule",
			raw:  nil,
			check: func(t *testing.T, tmpl availability.Template) {
				assert.True(t, tmpl.IsEmpty())
			},
		},
		{
			name:      "unknown doctor",
			mockError: pgx.ErrNoRows,
			wantErr:   true,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantErr:   true,
			wantKind:  infra.KindDBFailure,
		},
		{
			name:     "corrupt document",
			raw:      []byte(`{"monday":`),
			wantErr:  true,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockDoctorViewQueries)
			q.On("GetDoctorAvailability", mock.Anything, mock.Anything, doctorID).Return(tt.raw, tt.mockError)

			store := NewDoctorReadStore(q, nil)
			tmpl, err := store.GetTemplate(context.Background(), doctorID)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				tt.check(t, tmpl)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestDoctorReadStore_List(t *testing.T) {
	row := sqlc.ListDoctorsRow{
		ID:             uuid.New(),
		Email:          "ravi@example.com",
		FirstName:      "Ravi",
		LastName:       "Kumar",
		Specialization: pgtype.Text{String: "Cardiology", Valid: true},
		Experience:     pgtype.Int4{Int32: 12, Valid: true},
		Languages:      nil,
		Availability:   []byte(`{"tuesday":["11:00"]}`),
	}

	t.Run("filters by specialization", func(t *testing.T) {
		q := new(MockDoctorViewQueries)
		q.On("ListDoctors", mock.Anything, mock.Anything, pgtype.Text{String: "cardio", Valid: true}).
			Return([]sqlc.ListDoctorsRow{row}, nil)

		store := NewDoctorReadStore(q, nil)
		views, err := store.List(context.Background(), "cardio")

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Cardiology", views[0].Specialization)
		assert.Equal(t, 12, views[0].Experience)
		assert.Equal(t, []string{"Hindi", "English"}, views[0].Languages)
		assert.Equal(t, []string{"11:00"}, views[0].Availability.Slots(availability.Tuesday))
		q.AssertExpectations(t)
	})

	t.Run("no filter passes NULL", func(t *testing.T) {
		q := new(MockDoctorViewQueries)
		q.On("ListDoctors", mock.Anything, mock.Anything, pgtype.Text{}).Return([]sqlc.ListDoctorsRow{}, nil)

		store := NewDoctorReadStore(q, nil)
		views, err := store.List(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, views)
		q.AssertExpectations(t)
	})
}
