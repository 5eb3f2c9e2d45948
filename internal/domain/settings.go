package domain

import "time"

// Weekday день недели в нумерации дашборда: 1 = воскресенье ... 7 = суббота
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Weekdays все дни недели в порядке хранения
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayKeys = map[Weekday]string{
	Sunday:    "sun",
	Monday:    "mon",
	Tuesday:   "tue",
	Wednesday: "wed",
	Thursday:  "thu",
	Friday:    "fri",
	Saturday:  "sat",
}

// WeekdayOf переводит time.Weekday в нумерацию дашборда
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday(int(d) + 1)
}

// Valid проверяет, что день в диапазоне 1..7
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Key короткое имя дня, используемое в именах колонок ("sun", "mon", ...)
func (d Weekday) Key() string {
	return weekdayKeys[d]
}

// SettingColumn колонка рабочих часов в tbl_consultant_setting
func (d Weekday) SettingColumn() string {
	return "fld_" + d.Key() + "_time_data"
}

// PresaleColumn колонка пресейл-слотов в tbl_consultant_presaleslots
func (d Weekday) PresaleColumn() string {
	return d.Key() + "_time"
}

// DayValues по одному необязательному значению на каждый день недели.
// nil означает, что значение не задано (NULL в БД или не передано в запросе).
type DayValues [7]*string

// Get возвращает значение дня
func (v *DayValues) Get(d Weekday) *string {
	if !d.Valid() {
		return nil
	}
	return v[d-1]
}

// Set задает значение дня
func (v *DayValues) Set(d Weekday, value *string) {
	if !d.Valid() {
		return
	}
	v[d-1] = value
}

// IsEmpty returns true if no day has a value
func (v *DayValues) IsEmpty() bool {
	for _, value := range v {
		if value != nil {
			return false
		}
	}
	return true
}

// ConsultantSetting рабочие часы консультанта по дням недели (tbl_consultant_setting).
// Значение дня - интервалы вида "09:00||12:00~14:00||18:00".
type ConsultantSetting struct {
	ID           int64
	ConsultantID int64
	TimeData     DayValues
}

// TimeDataFor returns the raw range data for a weekday, or an empty string
func (s *ConsultantSetting) TimeDataFor(d Weekday) string {
	if value := s.TimeData.Get(d); value != nil {
		return *value
	}
	return ""
}

// PresaleSlotSetting выбранные пресейл-слоты пользователя (tbl_consultant_presaleslots).
// Значение дня - JSON-массив меток слотов, например ["9:00 AM - 9:30 AM"].
type PresaleSlotSetting struct {
	ID     int64
	UserID int64
	Slots  DayValues
}
