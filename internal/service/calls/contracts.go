package calls

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	GetParticularStatusCalls(ctx context.Context, filter domain.StatusCallsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
