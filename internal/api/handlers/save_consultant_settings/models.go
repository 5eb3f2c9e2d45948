package save_consultant_settings

import (
	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	saveConsultantSetting "github.com/m04kA/SMC-CallDashboard/internal/usecase/save_consultant_setting"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

// SaveConsultantSettingsRequest тело запроса.
// Непереданный день или null не изменяется, пустая строка очищает день.
type SaveConsultantSettingsRequest struct {
	ConsultantID types.LooseString `json:"consultantid"`
	Sun          *string           `json:"fld_sun_time_data"`
	Mon          *string           `json:"fld_mon_time_data"`
	Tue          *string           `json:"fld_tue_time_data"`
	Wed          *string           `json:"fld_wed_time_data"`
	Thu          *string           `json:"fld_thu_time_data"`
	Fri          *string           `json:"fld_fri_time_data"`
	Sat          *string           `json:"fld_sat_time_data"`
}

// SaveConsultantSettingsResponse данные ответа
type SaveConsultantSettingsResponse struct {
	ConsultantID int64 `json:"consultantid"`
	Created      bool  `json:"created"`
	RowsAffected int64 `json:"rows_affected"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *SaveConsultantSettingsRequest) ToUseCaseRequest() *saveConsultantSetting.Request {
	req := &saveConsultantSetting.Request{ConsultantID: r.ConsultantID.Int64Ptr()}
	req.TimeData.Set(domain.Sunday, r.Sun)
	req.TimeData.Set(domain.Monday, r.Mon)
	req.TimeData.Set(domain.Tuesday, r.Tue)
	req.TimeData.Set(domain.Wednesday, r.Wed)
	req.TimeData.Set(domain.Thursday, r.Thu)
	req.TimeData.Set(domain.Friday, r.Fri)
	req.TimeData.Set(domain.Saturday, r.Sat)
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *saveConsultantSetting.Response) SaveConsultantSettingsResponse {
	return SaveConsultantSettingsResponse{
		ConsultantID: resp.ConsultantID,
		Created:      resp.Created,
		RowsAffected: resp.RowsAffected,
	}
}
