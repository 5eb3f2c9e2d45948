package settings

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// SettingRepository интерфейс репозитория рабочих часов консультантов
type SettingRepository interface {
	GetLatest(ctx context.Context, consultantID *int64) (*domain.ConsultantSetting, error)
}

// PresaleRepository интерфейс репозитория пресейл-слотов
type PresaleRepository interface {
	GetLatest(ctx context.Context, userID *int64) (*domain.PresaleSlotSetting, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
