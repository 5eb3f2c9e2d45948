package save_consultant_setting

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/slots"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ConsultantID == nil || *req.ConsultantID <= 0 {
		return ErrInvalidConsultantID
	}

	if req.TimeData.IsEmpty() {
		return ErrNoTimeData
	}

	for _, day := range domain.Weekdays {
		value := req.TimeData.Get(day)
		if value == nil || strings.TrimSpace(*value) == "" {
			continue
		}
		if _, err := slots.ParseTimeRanges(*value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTimeData, day.SettingColumn(), err)
		}
	}

	return nil
}
