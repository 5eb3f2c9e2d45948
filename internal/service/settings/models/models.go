package models

import "github.com/m04kA/SMC-CallDashboard/internal/domain"

// ConsultantSettingResponse последняя запись рабочих часов консультанта
type ConsultantSettingResponse struct {
	ID           int64
	ConsultantID int64
	TimeData     domain.DayValues // "HH:MM||HH:MM~HH:MM||HH:MM" по дням, nil - не задано
}

// PresaleSettingResponse последняя запись пресейл-слотов
type PresaleSettingResponse struct {
	ID     int64
	UserID int64
	Slots  domain.DayValues // JSON-массивы меток в том виде, в каком они сохранены
}

// PresaleDaySlotsRequest запрос слотов на день недели
type PresaleDaySlotsRequest struct {
	ConsultantID int64
	Weekday      domain.Weekday
}

// PresaleDaySlotsResponse доступные и уже выбранные слоты дня
type PresaleDaySlotsResponse struct {
	Weekday   domain.Weekday
	TimeData  string   // исходные рабочие часы дня
	Available []string // получасовые метки из рабочих часов
	Selected  []string // сохраненный выбор пользователя
}

// FromDomainSetting конвертирует доменную модель настроек в ответ
func FromDomainSetting(setting *domain.ConsultantSetting) *ConsultantSettingResponse {
	return &ConsultantSettingResponse{
		ID:           setting.ID,
		ConsultantID: setting.ConsultantID,
		TimeData:     setting.TimeData,
	}
}

// FromDomainPresale конвертирует доменную модель пресейл-слотов в ответ
func FromDomainPresale(setting *domain.PresaleSlotSetting) *PresaleSettingResponse {
	return &PresaleSettingResponse{
		ID:     setting.ID,
		UserID: setting.UserID,
		Slots:  setting.Slots,
	}
}
