package save_consultant_setting

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// UseCase use case сохранения рабочих часов консультанта
type UseCase struct {
	settingRepo SettingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingRepo SettingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		settingRepo: settingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute обновляет переданные дни; если у консультанта еще нет записи, создает ее.
// Обновление и вставка выполняются в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveConsultantSetting: validation failed: %v", err)
		return nil, err
	}

	response := &Response{ConsultantID: *req.ConsultantID}

	// 2. Upsert в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		affected, err := uc.settingRepo.Update(txCtx, response.ConsultantID, req.TimeData)
		if err != nil {
			return fmt.Errorf("update setting: %w", err)
		}
		response.RowsAffected = affected
		if affected > 0 {
			return nil
		}

		if _, err := uc.settingRepo.Create(txCtx, &domain.ConsultantSetting{
			ConsultantID: response.ConsultantID,
			TimeData:     req.TimeData,
		}); err != nil {
			return fmt.Errorf("create setting: %w", err)
		}
		response.Created = true
		return nil
	})
	if err != nil {
		uc.logger.Error("SaveConsultantSetting: transaction failed for consultant=%d: %v", response.ConsultantID, err)
		return nil, fmt.Errorf("%w: failed to save consultant setting: %v", ErrInternal, err)
	}

	uc.logger.Info("SaveConsultantSetting: consultant=%d, created=%t, rows_affected=%d",
		response.ConsultantID, response.Created, response.RowsAffected)

	return response, nil
}
