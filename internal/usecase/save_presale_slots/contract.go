package save_presale_slots

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// PresaleRepository интерфейс репозитория пресейл-слотов
type PresaleRepository interface {
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
	Create(ctx context.Context, setting *domain.PresaleSlotSetting) (*domain.PresaleSlotSetting, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик дашборда
type Metrics interface {
	RecordPresaleReplace(success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
