package get_particular_status_calls

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-CallDashboard/internal/service/calls"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgStatusRequired     = "status is required"
	msgInvalidCRMID       = "crm_id must be numeric"
)

type Handler struct {
	service CallService
	logger  Logger
}

func NewHandler(service CallService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/dashboard/getparticularstatuscalls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StatusCallsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /getparticularstatuscalls - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	crmID, ok := req.CRMIDPtr()
	if !ok {
		h.logger.Warn("POST /getparticularstatuscalls - Invalid crm_id: %s", req.CRMID)
		handlers.RespondBadRequest(w, msgInvalidCRMID)
		return
	}

	bookings, err := h.service.GetParticularStatusCalls(r.Context(), req.Status.String(), crmID)
	if err != nil {
		if errors.Is(err, calls.ErrInvalidInput) {
			h.logger.Warn("POST /getparticularstatuscalls - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgStatusRequired)
			return
		}
		h.logger.Error("POST /getparticularstatuscalls - Failed to get calls: status=%s, error=%v", req.Status, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /getparticularstatuscalls - Calls retrieved: status=%s, count=%d", req.Status, len(bookings))
	handlers.RespondData(w, handlers.NewBookingRows(bookings))
}
