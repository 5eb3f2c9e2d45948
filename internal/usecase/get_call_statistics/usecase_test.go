package get_call_statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/testutil"
	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) CountByFilter(ctx context.Context, filter domain.StatsFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockMetrics struct {
	rules []string
}

func (m *mockMetrics) RecordCallStatistics(rule string) {
	m.rules = append(m.rules, rule)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newUseCase(t *testing.T, repo BookingRepository, metrics Metrics) *UseCase {
	t.Helper()
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)

	uc := NewUseCase(repo, metrics, loc, time.Sunday, testutil.NopLogger{})
	uc.timeProvider = fixedClock{now: time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		filter      domain.FilterContext
		wantRule    domain.IdentityRule
		wantPeriod  []string
		wantConvert bool
	}{
		{
			name:     "no filters",
			filter:   domain.FilterContext{},
			wantRule: domain.RuleUnrestricted,
		},
		{
			name: "consultant and crm today",
			filter: domain.FilterContext{
				FilterType:   domain.FilterToday,
				ConsultantID: ptr.Ptr(int64(5)),
				CRMID:        ptr.Ptr(int64(9)),
			},
			wantRule:   domain.RuleConsultantAndCRM,
			wantPeriod: []string{"2024-03-15 00:00:00", "2024-03-15 23:59:59"},
		},
		{
			name: "month ends today",
			filter: domain.FilterContext{
				FilterType:      domain.FilterMonth,
				ConvertedStatus: domain.ConvertedStatusFilter,
				SessionUserType: domain.SessionExecutive,
				SessionUserID:   ptr.Ptr(int64(3)),
			},
			wantRule:    domain.RuleSessionExecutive,
			wantPeriod:  []string{"2024-03-01 00:00:00", "2024-03-15 23:59:59"},
			wantConvert: true,
		},
		{
			name: "subadmin with teams last month",
			filter: domain.FilterContext{
				FilterType:      domain.FilterLastMonth,
				SessionUserType: domain.SessionSubadmin,
				SessionUserID:   ptr.Ptr(int64(4)),
				TeamIDs:         []string{"1", "2"},
			},
			wantRule:   domain.RuleSessionSubadminTeams,
			wantPeriod: []string{"2024-02-01 00:00:00", "2024-02-29 23:59:59"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			metrics := &mockMetrics{}
			repo.On("CountByFilter", ctx, mock.MatchedBy(func(f domain.StatsFilter) bool {
				if f.Identity.Rule != tt.wantRule || f.ConvertedOnly != tt.wantConvert {
					return false
				}
				if tt.wantPeriod == nil {
					return f.Period == nil
				}
				return f.Period != nil &&
					f.Period.StartString() == tt.wantPeriod[0] &&
					f.Period.EndString() == tt.wantPeriod[1]
			})).Return(int64(12), nil)

			resp, err := newUseCase(t, repo, metrics).Execute(ctx, &Request{Filter: tt.filter})

			require.NoError(t, err)
			assert.Equal(t, int64(12), resp.Total)
			assert.Equal(t, tt.wantRule, resp.Rule)
			assert.Equal(t, []string{tt.wantRule.String()}, metrics.rules)
			repo.AssertExpectations(t)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepo{}
	metrics := &mockMetrics{}
	repo.On("CountByFilter", ctx, mock.Anything).Return(int64(0), errors.New("deadlock"))

	_, err := newUseCase(t, repo, metrics).Execute(ctx, &Request{})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, metrics.rules)
}
