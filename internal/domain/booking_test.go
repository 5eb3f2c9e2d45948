package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
)

func TestBooking_HasConsultant(t *testing.T) {
	b := &Booking{ConsultantID: ptr.Ptr(int64(1)), ThirdConsultantID: ptr.Ptr(int64(3))}

	assert.True(t, b.HasConsultant(1))
	assert.True(t, b.HasConsultant(3))
	assert.False(t, b.HasConsultant(2))
}

func TestBooking_IsCallStatusUpdatePending(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)
	slotAt := func(h, m int) *time.Time {
		s := time.Date(2024, 3, 15, h, m, 0, 0, loc)
		return &s
	}

	accepted := func(date string) *Booking {
		return &Booking{BookingDate: date, ConsultationStatus: ptr.Ptr(ConsultationStatusAccept)}
	}

	assert.True(t, accepted("2024-03-14").IsCallStatusUpdatePending(now, loc, nil))
	assert.False(t, accepted("2024-03-16").IsCallStatusUpdatePending(now, loc, nil))

	// 10:30 + 30m + 1h = 12:00, граница включительно
	assert.True(t, accepted("2024-03-15").IsCallStatusUpdatePending(now, loc, slotAt(10, 30)))
	assert.False(t, accepted("2024-03-15").IsCallStatusUpdatePending(now, loc, slotAt(10, 31)))
	assert.False(t, accepted("2024-03-15").IsCallStatusUpdatePending(now, loc, nil))

	rejected := &Booking{BookingDate: "2024-03-01", ConsultationStatus: ptr.Ptr("Reject")}
	assert.False(t, rejected.IsCallStatusUpdatePending(now, loc, nil))
}
