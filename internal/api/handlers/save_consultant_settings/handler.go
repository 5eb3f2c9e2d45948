package save_consultant_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
	saveConsultantSetting "github.com/m04kA/SMC-CallDashboard/internal/usecase/save_consultant_setting"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidConsultant  = "valid consultantid is required"
	msgNoTimeData         = "at least one day must be provided"
)

type Handler struct {
	useCase SaveConsultantSettingUseCase
	logger  Logger
}

func NewHandler(useCase SaveConsultantSettingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/dashboard/saveconsultantsettings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SaveConsultantSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /saveconsultantsettings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, saveConsultantSetting.ErrInvalidConsultantID):
			h.logger.Warn("POST /saveconsultantsettings - Invalid consultant id: %s", req.ConsultantID)
			handlers.RespondBadRequest(w, msgInvalidConsultant)
		case errors.Is(err, saveConsultantSetting.ErrNoTimeData):
			h.logger.Warn("POST /saveconsultantsettings - No time data: consultant_id=%s", req.ConsultantID)
			handlers.RespondBadRequest(w, msgNoTimeData)
		case errors.Is(err, saveConsultantSetting.ErrInvalidTimeData):
			h.logger.Warn("POST /saveconsultantsettings - Invalid time data: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /saveconsultantsettings - Failed to save setting: consultant_id=%s, error=%v", req.ConsultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /saveconsultantsettings - Setting saved: consultant_id=%d, created=%t", result.ConsultantID, result.Created)
	handlers.RespondData(w, FromUseCaseResponse(result))
}
