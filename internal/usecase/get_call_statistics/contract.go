package get_call_statistics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	// CountByFilter считает брони, подходящие под фильтр статистики
	CountByFilter(ctx context.Context, filter domain.StatsFilter) (int64, error)
}

// Metrics интерфейс бизнес-метрик дашборда
type Metrics interface {
	RecordCallStatistics(rule string)
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
