package settings

import (
	"context"
	"errors"
	"fmt"

	presaleRepo "github.com/m04kA/SMC-CallDashboard/internal/infra/storage/presale"
	settingRepo "github.com/m04kA/SMC-CallDashboard/internal/infra/storage/setting"
	"github.com/m04kA/SMC-CallDashboard/internal/service/settings/models"
	"github.com/m04kA/SMC-CallDashboard/internal/slots"
	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
)

// Service сервис чтения настроек доступности консультантов
type Service struct {
	settingRepo SettingRepository
	presaleRepo PresaleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingRepo SettingRepository,
	presaleRepo PresaleRepository,
	logger Logger,
) *Service {
	return &Service{
		settingRepo: settingRepo,
		presaleRepo: presaleRepo,
		logger:      logger,
	}
}

// GetConsultantSetting возвращает последнюю запись рабочих часов.
// Отсутствие записи не ошибка: возвращается nil.
func (s *Service) GetConsultantSetting(ctx context.Context, consultantID *int64) (*models.ConsultantSettingResponse, error) {
	setting, err := s.settingRepo.GetLatest(ctx, consultantID)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			s.logger.Info("GetConsultantSetting: no setting for consultant=%v", formatID(consultantID))
			return nil, nil
		}
		s.logger.Error("GetConsultantSetting: repository error for consultant=%v: %v", formatID(consultantID), err)
		return nil, fmt.Errorf("%w: GetConsultantSetting - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSetting(setting), nil
}

// GetPresaleSetting возвращает последнюю запись пресейл-слотов или nil
func (s *Service) GetPresaleSetting(ctx context.Context, userID *int64) (*models.PresaleSettingResponse, error) {
	setting, err := s.presaleRepo.GetLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, presaleRepo.ErrPresaleNotFound) {
			s.logger.Info("GetPresaleSetting: no presale slots for user=%v", formatID(userID))
			return nil, nil
		}
		s.logger.Error("GetPresaleSetting: repository error for user=%v: %v", formatID(userID), err)
		return nil, fmt.Errorf("%w: GetPresaleSetting - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPresale(setting), nil
}

// GetPresaleDaySlots разворачивает рабочие часы консультанта на день недели
// в получасовые метки и добавляет сохраненный выбор на этот день
func (s *Service) GetPresaleDaySlots(ctx context.Context, req *models.PresaleDaySlotsRequest) (*models.PresaleDaySlotsResponse, error) {
	if req.ConsultantID <= 0 {
		return nil, fmt.Errorf("%w: consultant id must be positive", ErrInvalidInput)
	}
	if !req.Weekday.Valid() {
		return nil, fmt.Errorf("%w: weekday must be in 1..7", ErrInvalidInput)
	}

	response := &models.PresaleDaySlotsResponse{
		Weekday:   req.Weekday,
		Available: []string{},
		Selected:  []string{},
	}

	setting, err := s.GetConsultantSetting(ctx, ptr.Ptr(req.ConsultantID))
	if err != nil {
		return nil, err
	}
	if setting != nil {
		if value := setting.TimeData.Get(req.Weekday); value != nil {
			response.TimeData = *value
			response.Available = slots.GenerateLabels(*value)
		}
	}

	presale, err := s.GetPresaleSetting(ctx, ptr.Ptr(req.ConsultantID))
	if err != nil {
		return nil, err
	}
	if presale != nil {
		daySlots, err := slots.DecodeDaySlots(presale.Slots)
		if err != nil {
			s.logger.Warn("GetPresaleDaySlots: skipped malformed presale days for user=%d: %v", req.ConsultantID, err)
		}
		if selected := daySlots[req.Weekday]; len(selected) > 0 {
			response.Selected = selected
		}
	}

	s.logger.Info("GetPresaleDaySlots: consultant=%d, day=%s, available=%d, selected=%d",
		req.ConsultantID, req.Weekday.Key(), len(response.Available), len(response.Selected))

	return response, nil
}

func formatID(id *int64) interface{} {
	if id == nil {
		return "any"
	}
	return *id
}
