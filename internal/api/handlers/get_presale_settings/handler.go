package get_presale_settings

import (
	"net/http"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/dashboard/getconsultantpresalesettings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PresaleSettingsRequest
	if err := handlers.DecodeJSON(r, &req, true); err != nil {
		h.logger.Warn("POST /getconsultantpresalesettings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GetPresaleSetting(r.Context(), req.ConsultantID.Int64Ptr())
	if err != nil {
		h.logger.Error("POST /getconsultantpresalesettings - Failed to get presale slots: user_id=%s, error=%v", req.ConsultantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, FromServiceResponse(result))
}
