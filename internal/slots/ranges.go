package slots

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

const (
	rangeSeparator = "~"
	boundSeparator = "||"
	endOfDay       = "24:00"
)

// ErrInvalidTimeRange возвращается для некорректных рабочих интервалов
var ErrInvalidTimeRange = errors.New("slots: invalid time range")

// ParseTimeRanges разбирает рабочие интервалы "09:00||12:00~14:00||18:00".
// Пустая строка - ни одного интервала.
func ParseTimeRanges(data string) ([]domain.TimeRange, error) {
	var ranges []domain.TimeRange
	for _, part := range strings.Split(data, rangeSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := parseTimeRange(part)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseTimeRange(part string) (domain.TimeRange, error) {
	bounds := strings.Split(part, boundSeparator)
	if len(bounds) != 2 {
		return domain.TimeRange{}, fmt.Errorf("%w: %q: expected start||end", ErrInvalidTimeRange, part)
	}

	start, err := types.NewTimeStringFromString(strings.TrimSpace(bounds[0]))
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, part, err)
	}

	endRaw := strings.TrimSpace(bounds[1])
	r := domain.TimeRange{Start: start}
	if endRaw == endOfDay {
		r.EndOfDay = true
	} else {
		end, err := types.NewTimeStringFromString(endRaw)
		if err != nil {
			return domain.TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, part, err)
		}
		r.End = end
		r.EndOfDay = end.Minutes() == 0 && start.Minutes() > 0
	}

	if r.IsEmpty() {
		return domain.TimeRange{}, fmt.Errorf("%w: %q: end must be after start", ErrInvalidTimeRange, part)
	}
	return r, nil
}

// HalfHourLabels метки получасовых слотов внутри интервалов.
// Шаг отсчитывается от начала интервала; последний слот может выходить за его конец.
func HalfHourLabels(ranges []domain.TimeRange) []string {
	labels := make([]string, 0)
	for _, r := range ranges {
		for minutes := r.Start.Minutes(); minutes < r.EndMinutes(); minutes += bucketMinutes {
			start, err := types.NewTimeStringFromMinutes(minutes)
			if err != nil {
				break
			}
			labels = append(labels, FormatLabel(start))
		}
	}
	return labels
}

// GenerateLabels метки слотов для сырых данных дня.
// Некорректные интервалы пропускаются, остальные разворачиваются.
func GenerateLabels(data string) []string {
	var ranges []domain.TimeRange
	for _, part := range strings.Split(data, rangeSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if r, err := parseTimeRange(part); err == nil {
			ranges = append(ranges, r)
		}
	}
	return HalfHourLabels(ranges)
}
