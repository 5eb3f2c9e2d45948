package get_call_statistics

import (
	"net/http"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CallStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase CallStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/dashboard/getcall_statistics
// Пустое тело означает подсчет без фильтров
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CallStatisticsRequest
	if err := handlers.DecodeJSON(r, &req, true); err != nil {
		h.logger.Warn("POST /getcall_statistics - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.logger.Error("POST /getcall_statistics - Failed to count bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /getcall_statistics - Counted: total=%d, rule=%s", result.Total, result.Rule)
	handlers.RespondData(w, FromUseCaseResponse(result))
}
