package get_consultant_settings

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/service/settings/models"
)

type SettingsService interface {
	GetConsultantSetting(ctx context.Context, consultantID *int64) (*models.ConsultantSettingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
