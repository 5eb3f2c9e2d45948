package get_presale_day_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-CallDashboard/internal/service/settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidParams      = "consultantid and day (1-7) are required"
)

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

// Handle POST /api/dashboard/getpresaledayslots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PresaleDaySlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /getpresaledayslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GetPresaleDaySlots(r.Context(), req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("POST /getpresaledayslots - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("POST /getpresaledayslots - Failed to get day slots: consultant_id=%s, error=%v", req.ConsultantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, FromServiceResponse(result))
}
