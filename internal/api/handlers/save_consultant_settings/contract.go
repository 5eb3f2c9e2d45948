package save_consultant_settings

import (
	"context"

	saveConsultantSetting "github.com/m04kA/SMC-CallDashboard/internal/usecase/save_consultant_setting"
)

type SaveConsultantSettingUseCase interface {
	Execute(ctx context.Context, req *saveConsultantSetting.Request) (*saveConsultantSetting.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
