package get_call_statistics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/testutil"
	getCallStatistics "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_call_statistics"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getCallStatistics.Request) (*getCallStatistics.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getCallStatistics.Response)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getCallStatistics.Request) bool {
		return req.Filter.FilterType == domain.FilterToday &&
			req.Filter.ConsultantID != nil && *req.Filter.ConsultantID == 5
	})).Return(&getCallStatistics.Response{Total: 17, Rule: domain.RuleConsultant}, nil)

	body := `{"filter_type": "Today", "consultantid": "5"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/getcall_statistics", strings.NewReader(body))

	NewHandler(uc, testutil.NopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": true, "data": {"total": 17}}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandler_Handle_EmptyBody(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getCallStatistics.Response{Total: 0}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, testutil.NopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": true, "data": {"total": 0}}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"team_id": [1, 2]}`))

		NewHandler(&mockUseCase{}, testutil.NopLogger{}).Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"status": false, "message": "invalid request body"}`, rec.Body.String())
	})

	t.Run("use case failure", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
		rec := httptest.NewRecorder()

		NewHandler(uc, testutil.NopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":false`)
	})
}
