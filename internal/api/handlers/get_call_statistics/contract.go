package get_call_statistics

import (
	"context"

	getCallStatistics "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_call_statistics"
)

type CallStatisticsUseCase interface {
	Execute(ctx context.Context, req *getCallStatistics.Request) (*getCallStatistics.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
