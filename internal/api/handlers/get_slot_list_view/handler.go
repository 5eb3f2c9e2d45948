package get_slot_list_view

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
	getSlotList "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_slot_list"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase SlotListUseCase
	logger  Logger
}

func NewHandler(useCase SlotListUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/dashboard/getslotlistview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SlotListRequest
	if err := handlers.DecodeJSON(r, &req, true); err != nil {
		h.logger.Warn("POST /getslotlistview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, getSlotList.ErrInvalidDateRange) {
			h.logger.Warn("POST /getslotlistview - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /getslotlistview - Failed to build slot list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /getslotlistview - Slot list built: %s..%s, days=%d", result.DateFrom, result.DateTo, len(result.Days))
	handlers.RespondData(w, FromUseCaseResponse(result))
}
