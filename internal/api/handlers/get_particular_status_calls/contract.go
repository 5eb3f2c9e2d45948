package get_particular_status_calls

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

type CallService interface {
	GetParticularStatusCalls(ctx context.Context, status string, crmID *int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
