package get_presale_day_slots

import (
	"context"

	"github.com/m04kA/SMC-CallDashboard/internal/service/settings/models"
)

type SettingsService interface {
	GetPresaleDaySlots(ctx context.Context, req *models.PresaleDaySlotsRequest) (*models.PresaleDaySlotsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
