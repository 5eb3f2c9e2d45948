package slots

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// ErrInvalidDaySlots возвращается, когда значение дня не является JSON-массивом меток
var ErrInvalidDaySlots = errors.New("slots: invalid day slots")

// DaySlots выбранные метки слотов по дням недели
type DaySlots map[domain.Weekday][]string

// Encode переводит выбор в семь колонок <day>_time: JSON-массив или NULL для пустого дня
func (d DaySlots) Encode() (domain.DayValues, error) {
	var values domain.DayValues
	for _, day := range domain.Weekdays {
		labels := d[day]
		if len(labels) == 0 {
			continue
		}
		data, err := json.Marshal(labels)
		if err != nil {
			return domain.DayValues{}, fmt.Errorf("%w: %s: %v", ErrInvalidDaySlots, day.Key(), err)
		}
		encoded := string(data)
		values.Set(day, &encoded)
	}
	return values, nil
}

// DecodeDaySlots разбирает семь колонок обратно.
// Дни с некорректным JSON пропускаются, ошибки по ним возвращаются вместе с остальным результатом.
func DecodeDaySlots(values domain.DayValues) (DaySlots, error) {
	result := make(DaySlots)
	var errs []error

	for _, day := range domain.Weekdays {
		raw := values.Get(day)
		if raw == nil || strings.TrimSpace(*raw) == "" {
			continue
		}

		var labels []string
		if err := json.Unmarshal([]byte(*raw), &labels); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidDaySlots, day.PresaleColumn(), err))
			continue
		}
		if len(labels) > 0 {
			result[day] = labels
		}
	}

	return result, errors.Join(errs...)
}

// Validate проверяет дни недели и каждую метку
func (d DaySlots) Validate() error {
	for day, labels := range d {
		if !day.Valid() {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidDaySlots, day)
		}
		for _, label := range labels {
			if _, err := ParseLabel(label); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidDaySlots, day.Key(), err)
			}
		}
	}
	return nil
}

// SelectedDays количество дней с выбранными слотами
func (d DaySlots) SelectedDays() int {
	count := 0
	for _, labels := range d {
		if len(labels) > 0 {
			count++
		}
	}
	return count
}
