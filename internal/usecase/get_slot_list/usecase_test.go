package get_slot_list

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/slots"
	"github.com/m04kA/SMC-CallDashboard/internal/testutil"
	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetForSchedule(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newUseCase(t *testing.T, repo BookingRepository) *UseCase {
	t.Helper()
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)

	uc := NewUseCase(repo, slots.NewBucketer(loc), loc, Window{PastDays: 7, FutureDays: 2}, testutil.NopLogger{})
	// 12:00 15 марта по Asia/Kolkata
	uc.timeProvider = fixedClock{now: time.Date(2024, 3, 15, 6, 30, 0, 0, time.UTC)}
	return uc
}

func newBooking(id int64, date, slot, consultation string) *domain.Booking {
	booking := &domain.Booking{ID: id, BookingDate: date, ConsultationStatus: ptr.Ptr(consultation)}
	if slot != "" {
		booking.BookingSlot = ptr.Ptr(slot)
	}
	return booking
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepo{}

	accepted := newBooking(1, "2024-03-15", "9:00 AM", "Accept")
	recent := newBooking(2, "2024-03-15", "11:15 AM", "Accept")
	pending := newBooking(3, "2024-03-15", "9:20 AM", "Pending")
	yesterday := newBooking(4, "2024-03-14", "3:30 PM", "Accept")
	broken := newBooking(5, "2024-03-16", "", "Accept")

	repo.On("GetForSchedule", ctx, domain.ScheduleFilter{
		Identity: domain.IdentityScope{Rule: domain.RuleConsultant, ConsultantID: 5},
		SaleType: "Presales",
		DateFrom: "2024-03-08",
		DateTo:   "2024-03-17",
	}).Return([]*domain.Booking{yesterday, accepted, recent, pending, broken}, nil)

	resp, err := newUseCase(t, repo).Execute(ctx, &Request{
		Filter: domain.FilterContext{ConsultantID: ptr.Ptr(int64(5)), SaleType: "Presales"},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	require.Len(t, resp.Days, 10)
	assert.Equal(t, "2024-03-08", resp.Days[0].Date)
	assert.Equal(t, "Friday, 08 Mar 2024", resp.Days[0].Heading)
	assert.Zero(t, resp.Days[0].Total)
	assert.Empty(t, resp.Days[0].Buckets)

	yesterdayDay := resp.Days[6]
	assert.Equal(t, "Thursday, 14 Mar 2024", yesterdayDay.Heading)
	require.Len(t, yesterdayDay.Buckets, 1)
	assert.True(t, yesterdayDay.Buckets[0].Bookings[0].CallStatusUpdatePending, "past accepted calls are always pending")

	today := resp.Days[7]
	assert.Equal(t, domain.HeadingToday, today.Heading)
	assert.Equal(t, 3, today.Total)
	require.Len(t, today.Buckets, 2)

	morning := today.Buckets[0]
	assert.Equal(t, "9:00 AM - 9:30 AM", morning.Label)
	assert.Equal(t, 2, morning.Count)
	require.Len(t, morning.Bookings, 2)
	assert.Equal(t, int64(1), morning.Bookings[0].Booking.ID)
	assert.True(t, morning.Bookings[0].CallStatusUpdatePending)
	assert.Equal(t, int64(3), morning.Bookings[1].Booking.ID)
	assert.False(t, morning.Bookings[1].CallStatusUpdatePending, "only accepted calls are marked")

	late := today.Buckets[1]
	assert.Equal(t, "11:00 AM - 11:30 AM", late.Label)
	assert.False(t, late.Bookings[0].CallStatusUpdatePending, "grace hour has not passed yet")

	tomorrow := resp.Days[8]
	assert.Equal(t, domain.HeadingTomorrow, tomorrow.Heading)
	require.Len(t, tomorrow.Buckets, 1)
	assert.Equal(t, slots.InvalidLabel, tomorrow.Buckets[0].Label)
	assert.False(t, tomorrow.Buckets[0].Bookings[0].CallStatusUpdatePending)
}

func TestUseCase_Execute_ExplicitWindow(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepo{}
	repo.On("GetForSchedule", ctx, mock.MatchedBy(func(f domain.ScheduleFilter) bool {
		return f.DateFrom == "2024-02-28" && f.DateTo == "2024-03-01" && f.Identity.Rule == domain.RuleUnrestricted
	})).Return([]*domain.Booking{}, nil)

	resp, err := newUseCase(t, repo).Execute(ctx, &Request{
		DateFrom: ptr.Ptr("2024-02-28"),
		DateTo:   ptr.Ptr(" 2024-03-01 "),
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2024-02-29", resp.Days[1].Date)
}

func TestUseCase_Execute_InvalidWindow(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"bad format", &Request{DateFrom: ptr.Ptr("15.03.2024")}},
		{"reversed", &Request{DateFrom: ptr.Ptr("2024-03-10"), DateTo: ptr.Ptr("2024-03-01")}},
		{"too long", &Request{DateFrom: ptr.Ptr("2024-01-01"), DateTo: ptr.Ptr("2024-12-31")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(t, &mockBookingRepo{}).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetForSchedule", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := newUseCase(t, repo).Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInternal)
}
