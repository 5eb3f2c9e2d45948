package get_consultant_settings

import (
	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/service/settings/models"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

// ConsultantSettingsRequest тело запроса; consultantid необязателен
type ConsultantSettingsRequest struct {
	ConsultantID types.LooseString `json:"consultantid"`
}

// ConsultantSettingRow строка tbl_consultant_setting
type ConsultantSettingRow struct {
	ID           int64   `json:"id"`
	ConsultantID int64   `json:"fld_consultantid"`
	Sun          *string `json:"fld_sun_time_data"`
	Mon          *string `json:"fld_mon_time_data"`
	Tue          *string `json:"fld_tue_time_data"`
	Wed          *string `json:"fld_wed_time_data"`
	Thu          *string `json:"fld_thu_time_data"`
	Fri          *string `json:"fld_fri_time_data"`
	Sat          *string `json:"fld_sat_time_data"`
}

// FromServiceResponse конвертирует ответ сервиса, nil остается nil
func FromServiceResponse(resp *models.ConsultantSettingResponse) *ConsultantSettingRow {
	if resp == nil {
		return nil
	}
	return &ConsultantSettingRow{
		ID:           resp.ID,
		ConsultantID: resp.ConsultantID,
		Sun:          resp.TimeData.Get(domain.Sunday),
		Mon:          resp.TimeData.Get(domain.Monday),
		Tue:          resp.TimeData.Get(domain.Tuesday),
		Wed:          resp.TimeData.Get(domain.Wednesday),
		Thu:          resp.TimeData.Get(domain.Thursday),
		Fri:          resp.TimeData.Get(domain.Friday),
		Sat:          resp.TimeData.Get(domain.Saturday),
	}
}
