package get_slot_list_view

import (
	"context"

	getSlotList "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_slot_list"
)

type SlotListUseCase interface {
	Execute(ctx context.Context, req *getSlotList.Request) (*getSlotList.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
