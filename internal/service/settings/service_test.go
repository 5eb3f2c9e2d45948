package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	presaleRepo "github.com/m04kA/SMC-CallDashboard/internal/infra/storage/presale"
	settingRepo "github.com/m04kA/SMC-CallDashboard/internal/infra/storage/setting"
	"github.com/m04kA/SMC-CallDashboard/internal/service/settings/models"
	"github.com/m04kA/SMC-CallDashboard/internal/testutil"
	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
)

type mockSettingRepo struct {
	mock.Mock
}

func (m *mockSettingRepo) GetLatest(ctx context.Context, consultantID *int64) (*domain.ConsultantSetting, error) {
	args := m.Called(ctx, consultantID)
	setting, _ := args.Get(0).(*domain.ConsultantSetting)
	return setting, args.Error(1)
}

type mockPresaleRepo struct {
	mock.Mock
}

func (m *mockPresaleRepo) GetLatest(ctx context.Context, userID *int64) (*domain.PresaleSlotSetting, error) {
	args := m.Called(ctx, userID)
	setting, _ := args.Get(0).(*domain.PresaleSlotSetting)
	return setting, args.Error(1)
}

func newService() (*Service, *mockSettingRepo, *mockPresaleRepo) {
	settings := &mockSettingRepo{}
	presales := &mockPresaleRepo{}
	return NewService(settings, presales, testutil.NopLogger{}), settings, presales
}

func TestService_GetConsultantSetting(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, settings, _ := newService()
		stored := &domain.ConsultantSetting{ID: 3, ConsultantID: 5}
		stored.TimeData.Set(domain.Monday, ptr.Ptr("09:00||10:00"))
		settings.On("GetLatest", ctx, ptr.Ptr(int64(5))).Return(stored, nil)

		got, err := svc.GetConsultantSetting(ctx, ptr.Ptr(int64(5)))

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, "09:00||10:00", *got.TimeData.Get(domain.Monday))
	})

	t.Run("not found is nil", func(t *testing.T) {
		svc, settings, _ := newService()
		settings.On("GetLatest", ctx, (*int64)(nil)).Return(nil, settingRepo.ErrSettingNotFound)

		got, err := svc.GetConsultantSetting(ctx, nil)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, settings, _ := newService()
		settings.On("GetLatest", ctx, (*int64)(nil)).Return(nil, errors.New("boom"))

		_, err := svc.GetConsultantSetting(ctx, nil)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_GetPresaleSetting_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, presales := newService()
	presales.On("GetLatest", ctx, ptr.Ptr(int64(7))).Return(nil, presaleRepo.ErrPresaleNotFound)

	got, err := svc.GetPresaleSetting(ctx, ptr.Ptr(int64(7)))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_GetPresaleDaySlots(t *testing.T) {
	ctx := context.Background()
	svc, settings, presales := newService()

	stored := &domain.ConsultantSetting{ID: 1, ConsultantID: 5}
	stored.TimeData.Set(domain.Monday, ptr.Ptr("09:00||10:00~14:00||14:30"))
	settings.On("GetLatest", ctx, ptr.Ptr(int64(5))).Return(stored, nil)

	presale := &domain.PresaleSlotSetting{ID: 2, UserID: 5}
	presale.Slots.Set(domain.Monday, ptr.Ptr(`["9:30 AM - 10:00 AM"]`))
	presale.Slots.Set(domain.Tuesday, ptr.Ptr(`not json`))
	presales.On("GetLatest", ctx, ptr.Ptr(int64(5))).Return(presale, nil)

	got, err := svc.GetPresaleDaySlots(ctx, &models.PresaleDaySlotsRequest{ConsultantID: 5, Weekday: domain.Monday})

	require.NoError(t, err)
	assert.Equal(t, "09:00||10:00~14:00||14:30", got.TimeData)
	assert.Equal(t, []string{"9:00 AM - 9:30 AM", "9:30 AM - 10:00 AM", "2:00 PM - 2:30 PM"}, got.Available)
	assert.Equal(t, []string{"9:30 AM - 10:00 AM"}, got.Selected)
}

func TestService_GetPresaleDaySlots_NothingSaved(t *testing.T) {
	ctx := context.Background()
	svc, settings, presales := newService()
	settings.On("GetLatest", ctx, ptr.Ptr(int64(5))).Return(nil, settingRepo.ErrSettingNotFound)
	presales.On("GetLatest", ctx, ptr.Ptr(int64(5))).Return(nil, presaleRepo.ErrPresaleNotFound)

	got, err := svc.GetPresaleDaySlots(ctx, &models.PresaleDaySlotsRequest{ConsultantID: 5, Weekday: domain.Sunday})

	require.NoError(t, err)
	assert.Empty(t, got.Available)
	assert.Empty(t, got.Selected)
}

func TestService_GetPresaleDaySlots_InvalidInput(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.GetPresaleDaySlots(context.Background(), &models.PresaleDaySlotsRequest{ConsultantID: 0, Weekday: domain.Monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetPresaleDaySlots(context.Background(), &models.PresaleDaySlotsRequest{ConsultantID: 5, Weekday: 8})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
