package get_presale_settings

import (
	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/service/settings/models"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

// PresaleSettingsRequest тело запроса; consultantid фильтрует по user_id
type PresaleSettingsRequest struct {
	ConsultantID types.LooseString `json:"consultantid"`
}

// PresaleSettingRow строка tbl_consultant_presaleslots
type PresaleSettingRow struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Sun    *string `json:"sun_time"`
	Mon    *string `json:"mon_time"`
	Tue    *string `json:"tue_time"`
	Wed    *string `json:"wed_time"`
	Thu    *string `json:"thu_time"`
	Fri    *string `json:"fri_time"`
	Sat    *string `json:"sat_time"`
}

// FromServiceResponse конвертирует ответ сервиса, nil остается nil
func FromServiceResponse(resp *models.PresaleSettingResponse) *PresaleSettingRow {
	if resp == nil {
		return nil
	}
	return &PresaleSettingRow{
		ID:     resp.ID,
		UserID: resp.UserID,
		Sun:    resp.Slots.Get(domain.Sunday),
		Mon:    resp.Slots.Get(domain.Monday),
		Tue:    resp.Slots.Get(domain.Tuesday),
		Wed:    resp.Slots.Get(domain.Wednesday),
		Thu:    resp.Slots.Get(domain.Thursday),
		Fri:    resp.Slots.Get(domain.Friday),
		Sat:    resp.Slots.Get(domain.Saturday),
	}
}
