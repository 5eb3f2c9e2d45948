package get_consultant_settings

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

// Handle POST /api/dashboard/getconsultantsettings
// Без consultantid возвращается последняя запись таблицы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConsultantSettingsRequest
	if err := handlers.DecodeJSON(r, &req, true); err != nil {
		h.logger.Warn("POST /getconsultantsettings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GetConsultantSetting(r.Context(), req.ConsultantID.Int64Ptr())
	if err != nil {
		h.logger.Error("POST /getconsultantsettings - Failed to get setting: consultant_id=%s, error=%v", req.ConsultantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, FromServiceResponse(result))
}
