package get_presale_day_slots

import (
	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/service/settings/models"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

// PresaleDaySlotsRequest тело запроса: консультант и день недели 1..7 (1 - воскресенье)
type PresaleDaySlotsRequest struct {
	ConsultantID types.LooseString `json:"consultantid"`
	Day          types.LooseString `json:"day"`
}

// PresaleDaySlotsResponse данные ответа
type PresaleDaySlotsResponse struct {
	Day       int      `json:"day"`
	TimeData  string   `json:"time_data"`
	Available []string `json:"available"`
	Selected  []string `json:"selected"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса.
// Нечисловые значения превращаются в 0 и отклоняются сервисом.
func (r *PresaleDaySlotsRequest) ToServiceRequest() *models.PresaleDaySlotsRequest {
	consultantID, _ := r.ConsultantID.Int64()
	day, _ := r.Day.Int64()
	return &models.PresaleDaySlotsRequest{
		ConsultantID: consultantID,
		Weekday:      domain.Weekday(day),
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP ответ
func FromServiceResponse(resp *models.PresaleDaySlotsResponse) PresaleDaySlotsResponse {
	return PresaleDaySlotsResponse{
		Day:       int(resp.Weekday),
		TimeData:  resp.TimeData,
		Available: resp.Available,
		Selected:  resp.Selected,
	}
}
