package save_presale_settings

import (
	"context"

	savePresaleSlots "github.com/m04kA/SMC-CallDashboard/internal/usecase/save_presale_slots"
)

type SavePresaleSlotsUseCase interface {
	Execute(ctx context.Context, req *savePresaleSlots.Request) (*savePresaleSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
