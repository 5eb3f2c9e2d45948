package save_presale_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
	savePresaleSlots "github.com/m04kA/SMC-CallDashboard/internal/usecase/save_presale_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUserIDRequired     = "User ID is required"
	msgInvalidSlots       = "invalid slot data"
)

type Handler struct {
	useCase SavePresaleSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SavePresaleSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/dashboard/saveconsultantpresalesettings
// Все записи пользователя заменяются одной новой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SavePresaleSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /saveconsultantpresalesettings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /saveconsultantpresalesettings - Invalid slot data: user_id=%s, error=%v", req.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidSlots)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, savePresaleSlots.ErrUserIDRequired):
			h.logger.Warn("POST /saveconsultantpresalesettings - User ID is missing")
			handlers.RespondBadRequest(w, msgUserIDRequired)
		case errors.Is(err, savePresaleSlots.ErrInvalidSlots):
			h.logger.Warn("POST /saveconsultantpresalesettings - Invalid slots: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlots)
		default:
			h.logger.Error("POST /saveconsultantpresalesettings - Failed to replace slots: user_id=%s, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /saveconsultantpresalesettings - Slots saved: id=%d, user_id=%d, replaced=%d",
		result.ID, result.UserID, result.Replaced)
	handlers.RespondData(w, FromUseCaseResponse(result))
}
