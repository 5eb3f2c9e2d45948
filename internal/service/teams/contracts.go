package teams

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// TeamRepository интерфейс репозитория команд
type TeamRepository interface {
	GetAllActive(ctx context.Context) ([]*domain.Team, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
