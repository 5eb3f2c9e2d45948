package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesInHour = 60
	minutesInDay  = 24 * minutesInHour

	layout24h = "15:04"
	layout12h = "3:04 PM"
)

var (
	// ErrInvalidTimeString возвращается, когда строку не удалось разобрать как время суток
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfDay возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfDay = errors.New("time is out of day bounds")
)

// TimeString время суток с точностью до минуты.
// Принимает как 24-часовой формат ("15:04"), так и 12-часовой ("3:04 PM").
type TimeString struct {
	minutes int
}

// NewTimeString берёт время суток из time.Time (в его собственной локации)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*minutesInHour + t.Minute()}
}

// NewTimeStringFromMinutes создает время из количества минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesInDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfDay, minutes)
	}
	return TimeString{minutes: minutes}, nil
}

// NewTimeStringFromString разбирает строку вида "HH:MM", "H:MM AM" или "H:MM PM"
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 || len(parts) > 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || len(hm[1]) != 2 || minute < 0 || minute >= minutesInHour {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if len(parts) == 2 {
		switch strings.ToUpper(parts[1]) {
		case "AM":
			if hour < 0 || hour > 12 {
				return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
			}
			if hour == 12 {
				hour = 0
			}
		case "PM":
			if hour < 0 || hour > 12 {
				return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
			}
			if hour != 12 {
				hour += 12
			}
		default:
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	if hour < 0 || hour > 23 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString{minutes: hour*minutesInHour + minute}, nil
}

// Hour возвращает час (0-23)
func (t TimeString) Hour() int {
	return t.minutes / minutesInHour
}

// Minute возвращает минуты (0-59)
func (t TimeString) Minute() int {
	return t.minutes % minutesInHour
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// AddMinutes прибавляет минуты, не выходя за пределы суток.
// Ровно 24:00 считается допустимым концом интервала и представляется как 00:00.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	total := t.minutes + n
	if total < 0 || total > minutesInDay {
		return TimeString{}, fmt.Errorf("%w: %s %+d minutes", ErrTimeOutOfDay, t.String(), n)
	}
	return TimeString{minutes: total % minutesInDay}, nil
}

// FloorTo округляет время вниз до кратного step минут
func (t TimeString) FloorTo(step int) TimeString {
	if step <= 0 {
		return t
	}
	return TimeString{minutes: t.minutes - t.minutes%step}
}

// IsBefore проверяет, что t раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter проверяет, что t позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// On переносит время суток на дату day в локации loc
func (t TimeString) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}

// String возвращает время в формате "15:04"
func (t TimeString) String() string {
	return t.On(time.Time{}, time.UTC).Format(layout24h)
}

// Format12h возвращает время в формате "3:04 PM"
func (t TimeString) Format12h() string {
	return t.On(time.Time{}, time.UTC).Format(layout12h)
}
