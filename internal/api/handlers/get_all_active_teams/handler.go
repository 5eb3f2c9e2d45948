package get_all_active_teams

import (
	"net/http"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
)

type Handler struct {
	service TeamService
	logger  Logger
}

func NewHandler(service TeamService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/dashboard/getAllActiveTeams
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.GetAllActive(r.Context())
	if err != nil {
		h.logger.Error("GET /getAllActiveTeams - Failed to get teams: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /getAllActiveTeams - Teams retrieved successfully: count=%d", len(teams))
	handlers.RespondData(w, teams)
}
