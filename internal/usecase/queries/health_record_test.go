//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"
	queriesmock "github.com/TARIFUDDIN/swasthalink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func records(userID uuid.UUID, n int) []*queries.HealthRecordView {
	base := time.Date(2030, 1, 31, 12, 0, 0, 0, time.UTC)
	out := make([]*queries.HealthRecordView, n)
	for i := range out {
		out[i] = &queries.HealthRecordView{ID: uuid.New(), UserID: userID, Date: base.Add(-time.Duration(i) * time.Hour)}
	}
	return out
}

func TestHealthRecordQueries_ListByUser(t *testing.T) {
	userID := uuid.New()

	t.Run("first page with more rows emits a cursor at the last kept row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHealthRecordReadStore(ctrl)
		rows := records(userID, 3)
		store.EXPECT().FindByUserFirstPage(gomock.Any(), userID, int32(3)).Return(rows, nil)

		got, next, err := queries.NewHealthRecordQueries(store).ListByUser(context.Background(), userID, nil, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].Date.Equal(at))
	})

	t.Run("keyset page continues from the cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHealthRecordReadStore(ctrl)
		last := records(userID, 1)[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.Date, last.ID)}

		store.EXPECT().FindByUserKeyset(gomock.Any(), userID, gomock.Any(), last.ID, int32(queries.DefaultListLimit+1)).
			Return(records(userID, 1), nil)

		got, next, err := queries.NewHealthRecordQueries(store).ListByUser(context.Background(), userID, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("garbled cursor is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHealthRecordReadStore(ctrl)

		_, _, err := queries.NewHealthRecordQueries(store).ListByUser(context.Background(), userID, &queries.Cursor{After: "!!"}, 10)
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestHealthRecordQueries_GetByID(t *testing.T) {
	owner := uuid.New()
	rec := records(owner, 1)[0]

	t.Run("owner can read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHealthRecordReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), rec.ID).Return(rec, nil)

		got, err := queries.NewHealthRecordQueries(store).GetByID(context.Background(), rec.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("other users get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHealthRecordReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), rec.ID).Return(rec, nil)

		_, err := queries.NewHealthRecordQueries(store).GetByID(context.Background(), rec.ID, uuid.New())
		require.ErrorIs(t, err, queries.ErrHealthRecordNotFound)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHealthRecordReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), rec.ID).Return(nil, infra.WrapRepoErr("health record not found", nil, infra.KindNotFound))

		_, err := queries.NewHealthRecordQueries(store).GetByID(context.Background(), rec.ID, owner)
		require.ErrorIs(t, err, queries.ErrHealthRecordNotFound)
	})
}
