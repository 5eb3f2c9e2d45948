package get_presale_settings

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/service/settings/models"
)

type SettingsService interface {
	GetPresaleSetting(ctx context.Context, userID *int64) (*models.PresaleSettingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
