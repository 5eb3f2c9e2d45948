package save_presale_settings

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/slots"
	savePresaleSlots "github.com/m04kA/SMC-CallDashboard/internal/usecase/save_presale_slots"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

// SavePresaleSettingsRequest тело запроса.
// Значение дня - JSON-массив меток, переданный строкой (как шлет дашборд) или массивом.
type SavePresaleSettingsRequest struct {
	UserID types.LooseString `json:"user_id"`
	Sun    json.RawMessage   `json:"sun_time"`
	Mon    json.RawMessage   `json:"mon_time"`
	Tue    json.RawMessage   `json:"tue_time"`
	Wed    json.RawMessage   `json:"wed_time"`
	Thu    json.RawMessage   `json:"thu_time"`
	Fri    json.RawMessage   `json:"fri_time"`
	Sat    json.RawMessage   `json:"sat_time"`
}

// SavePresaleSettingsResponse данные ответа
type SavePresaleSettingsResponse struct {
	ID           int64 `json:"id"`
	UserID       int64 `json:"user_id"`
	Replaced     int64 `json:"replaced"`
	SelectedDays int   `json:"selected_days"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case.
// Некорректный JSON любого дня - ошибка всего запроса.
func (r *SavePresaleSettingsRequest) ToUseCaseRequest() (*savePresaleSlots.Request, error) {
	// порядок совпадает с domain.Weekdays
	raw := []json.RawMessage{r.Sun, r.Mon, r.Tue, r.Wed, r.Thu, r.Fri, r.Sat}

	var values domain.DayValues
	for i, day := range domain.Weekdays {
		value, err := dayValue(raw[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day.PresaleColumn(), err)
		}
		values.Set(day, value)
	}

	daySlots, err := slots.DecodeDaySlots(values)
	if err != nil {
		return nil, err
	}

	return &savePresaleSlots.Request{
		UserID: r.UserID.Int64Ptr(),
		Slots:  daySlots,
	}, nil
}

// dayValue достает JSON-массив дня: строка разворачивается, массив берется как есть
func dayValue(message json.RawMessage) (*string, error) {
	message = bytes.TrimSpace(message)
	if len(message) == 0 || bytes.Equal(message, []byte("null")) {
		return nil, nil
	}

	if message[0] == '"' {
		var s string
		if err := json.Unmarshal(message, &s); err != nil {
			return nil, err
		}
		return &s, nil
	}

	s := string(message)
	return &s, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *savePresaleSlots.Response) SavePresaleSettingsResponse {
	return SavePresaleSettingsResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		Replaced:     resp.Replaced,
		SelectedDays: resp.SelectedDays,
	}
}
