package domain

import (
	"time"
	_ "time/tzdata"

	"github.com/jinzhu/now"
)

// Period закрытый интервал [Start, End] в часовом поясе дашборда
type Period struct {
	Start time.Time
	End   time.Time
}

// StartString граница начала в формате "YYYY-MM-DD HH:mm:ss"
func (p Period) StartString() string {
	return p.Start.Format(DateTimeFormat)
}

// EndString граница конца в формате "YYYY-MM-DD HH:mm:ss"
func (p Period) EndString() string {
	return p.End.Format(DateTimeFormat)
}

// ResolvePeriod вычисляет границы периода для filterType относительно current в локации loc.
// Для неизвестного типа возвращает false: фильтр по дате не применяется.
//
// Month намеренно заканчивается концом сегодняшнего дня, а не концом месяца.
func ResolvePeriod(filterType FilterType, current time.Time, loc *time.Location, weekStart time.Weekday) (Period, bool) {
	cfg := &now.Config{
		WeekStartDay: weekStart,
		TimeLocation: loc,
	}
	// now.With не переводит время в TimeLocation, поэтому переводим сами
	n := cfg.With(current.In(loc))

	switch filterType {
	case FilterToday:
		return Period{Start: n.BeginningOfDay(), End: n.EndOfDay()}, true
	case FilterWeek:
		return Period{Start: n.BeginningOfWeek(), End: n.EndOfWeek()}, true
	case FilterMonth:
		return Period{Start: n.BeginningOfMonth(), End: n.EndOfDay()}, true
	case FilterLastMonth:
		prev := cfg.With(n.BeginningOfMonth().AddDate(0, 0, -1))
		return Period{Start: prev.BeginningOfMonth(), End: prev.EndOfMonth()}, true
	default:
		return Period{}, false
	}
}

// Today дата "сегодня" в локации loc в формате YYYY-MM-DD
func Today(current time.Time, loc *time.Location) string {
	return current.In(loc).Format(DateFormat)
}
