package get_slot_list_view

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/testutil"
	getSlotList "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_slot_list"
	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getSlotList.Request) (*getSlotList.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getSlotList.Response)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getSlotList.Request) bool {
		return req.DateFrom != nil && *req.DateFrom == "2024-03-15" && req.DateTo == nil &&
			req.Filter.SessionUserType == domain.SessionConsultant
	})).Return(&getSlotList.Response{
		DateFrom: "2024-03-15",
		DateTo:   "2024-03-15",
		Days: []getSlotList.Day{{
			Date:    "2024-03-15",
			Heading: domain.HeadingToday,
			Total:   1,
			Buckets: []getSlotList.Bucket{{
				Label: "9:00 AM - 9:30 AM",
				Count: 1,
				Bookings: []getSlotList.Item{{
					Booking: &domain.Booking{
						ID:                 4,
						BookingDate:        "2024-03-15",
						BookingSlot:        ptr.Ptr("9:10 AM"),
						ConsultationStatus: ptr.Ptr("Accept"),
					},
					CallStatusUpdatePending: true,
				}},
			}},
		}},
	}, nil)

	body := `{"session_user_type": "CONSULTANT", "session_user_id": 5, "date_from": "2024-03-15"}`
	rec := httptest.NewRecorder()
	NewHandler(uc, testutil.NopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, `"heading":"Today"`)
	assert.Contains(t, body, `"label":"9:00 AM - 9:30 AM"`)
	assert.Contains(t, body, `"fld_booking_slot":"9:10 AM"`)
	assert.Contains(t, body, `"call_status_label":"Call status updation pending"`)
}

func TestHandler_Handle_InvalidRange(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getSlotList.ErrInvalidDateRange)

	rec := httptest.NewRecorder()
	NewHandler(uc, testutil.NopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date_from": "x"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
