package get_all_active_teams

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/service/teams/models"
)

type TeamService interface {
	GetAllActive(ctx context.Context) ([]models.TeamResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
