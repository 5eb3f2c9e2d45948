package save_consultant_setting

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// SettingRepository интерфейс репозитория рабочих часов консультантов
type SettingRepository interface {
	Update(ctx context.Context, consultantID int64, timeData domain.DayValues) (int64, error)
	Create(ctx context.Context, setting *domain.ConsultantSetting) (*domain.ConsultantSetting, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
