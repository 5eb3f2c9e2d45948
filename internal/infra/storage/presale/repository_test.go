package presale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/testutil"
	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(testutil.NewTestDB(t), sqlbuilder.New(sqlbuilder.DialectSQLite))
}

func newSetting(userID int64, day domain.Weekday, slots string) *domain.PresaleSlotSetting {
	setting := &domain.PresaleSlotSetting{UserID: userID}
	setting.Slots.Set(day, ptr.Ptr(slots))
	return setting
}

func TestRepository_GetLatest(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	_, err := repo.GetLatest(ctx, nil)
	assert.ErrorIs(t, err, ErrPresaleNotFound)

	_, err = repo.Create(ctx, newSetting(7, domain.Monday, `["9:00 AM - 9:30 AM"]`))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newSetting(8, domain.Friday, `["1:00 PM - 1:30 PM"]`))
	require.NoError(t, err)

	got, err := repo.GetLatest(ctx, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, `["9:00 AM - 9:30 AM"]`, *got.Slots.Get(domain.Monday))
	assert.Nil(t, got.Slots.Get(domain.Friday))

	got, err = repo.GetLatest(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.UserID)

	_, err = repo.GetLatest(ctx, ptr.Ptr(int64(99)))
	assert.ErrorIs(t, err, ErrPresaleNotFound)
}

func TestRepository_DeleteByUser(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, newSetting(7, domain.Monday, `[]`))
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, newSetting(8, domain.Monday, `[]`))
	require.NoError(t, err)

	deleted, err := repo.DeleteByUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = repo.DeleteByUser(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	got, err := repo.GetLatest(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.UserID)
}
