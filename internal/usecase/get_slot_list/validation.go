package get_slot_list

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// maxWindowDays максимальная длина окна в днях
const maxWindowDays = 93

// resolveWindow вычисляет границы окна: даты из запроса или окно по умолчанию вокруг today
func resolveWindow(req *Request, today time.Time, window Window) (time.Time, time.Time, error) {
	from := today.AddDate(0, 0, -window.PastDays)
	to := today.AddDate(0, 0, window.FutureDays)

	if req.DateFrom != nil && strings.TrimSpace(*req.DateFrom) != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(*req.DateFrom), today.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: date_from must be YYYY-MM-DD", ErrInvalidDateRange)
		}
		from = parsed
	}

	if req.DateTo != nil && strings.TrimSpace(*req.DateTo) != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(*req.DateTo), today.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: date_to must be YYYY-MM-DD", ErrInvalidDateRange)
		}
		to = parsed
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_to is before date_from", ErrInvalidDateRange)
	}
	if to.Sub(from) > maxWindowDays*24*time.Hour {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: window exceeds %d days", ErrInvalidDateRange, maxWindowDays)
	}

	return from, to, nil
}
