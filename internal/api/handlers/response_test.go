package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
)

func TestRespondData(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondData(rec, map[string]int{"total": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": true, "data": {"total": 3}}`, rec.Body.String())
}

func TestRespondData_Null(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondData(rec, nil)

	assert.JSONEq(t, `{"status": true, "data": null}`, rec.Body.String())
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "User ID is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status": false, "message": "User ID is required"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondInternalError(rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status": false, "message": "internal server error"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "x"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "x", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.NoError(t, DecodeJSON(req, &v, true))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(req, &v, true))
}

func TestFilterParams_ToFilterContext(t *testing.T) {
	var params FilterParams
	body := `{
		"filter_type": "Week",
		"consultantid": "",
		"crm_id": 9,
		"sale_type": " Presales ",
		"converted_sts": "Converted",
		"session_user_type": "SUBADMIN",
		"session_user_id": "abc",
		"team_id": "1, ,2"
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	require.NoError(t, DecodeJSON(req, &params))

	f := params.ToFilterContext()

	assert.Equal(t, domain.FilterWeek, f.FilterType)
	assert.Nil(t, f.ConsultantID)
	assert.Equal(t, ptr.Ptr(int64(9)), f.CRMID)
	assert.Equal(t, "Presales", f.SaleType)
	assert.True(t, f.ConvertedOnly())
	assert.Equal(t, domain.SessionSubadmin, f.SessionUserType)
	assert.Nil(t, f.SessionUserID, "non-numeric session id is absent")
	assert.Equal(t, []string{"1", "2"}, f.TeamIDs)
	assert.Equal(t, domain.RuleCRM, f.Identity().Rule)
}
