package save_presale_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// UseCase use case замены пресейл-слотов пользователя
type UseCase struct {
	presaleRepo PresaleRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	presaleRepo PresaleRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		presaleRepo: presaleRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute заменяет все записи пользователя одной новой.
// Удаление и вставка выполняются в одной транзакции: при ошибке вставки старые записи остаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SavePresaleSlots: validation failed: %v", err)
		return nil, err
	}
	userID := *req.UserID

	// 2. Кодируем выбор в колонки <day>_time
	values, err := req.Slots.Encode()
	if err != nil {
		uc.logger.Warn("SavePresaleSlots: failed to encode slots for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlots, err)
	}

	uc.logger.Info("SavePresaleSlots: replacing presale slots for user=%d, days=%d", userID, req.Slots.SelectedDays())

	// 3. Удаляем старые записи и создаем новую в транзакции
	var (
		replaced int64
		created  *domain.PresaleSlotSetting
	)
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		replaced, err = uc.presaleRepo.DeleteByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("delete old slots: %w", err)
		}

		created, err = uc.presaleRepo.Create(txCtx, &domain.PresaleSlotSetting{
			UserID: userID,
			Slots:  values,
		})
		if err != nil {
			return fmt.Errorf("create slots: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.metrics.RecordPresaleReplace(false)
		uc.logger.Error("SavePresaleSlots: transaction failed for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to replace presale slots: %v", ErrInternal, err)
	}

	uc.metrics.RecordPresaleReplace(true)
	uc.logger.Info("SavePresaleSlots: saved presale slots id=%d for user=%d, replaced=%d", created.ID, userID, replaced)

	return &Response{
		ID:           created.ID,
		UserID:       userID,
		Replaced:     replaced,
		SelectedDays: req.Slots.SelectedDays(),
	}, nil
}
