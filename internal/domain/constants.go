package domain

import "time"

// Time format constants
const (
	DateFormat       = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat   = "2006-01-02 15:04:05" // YYYY-MM-DD HH:mm:ss
	DayHeadingFormat = "Monday, 02 Jan 2006"
)

// DefaultTimezone часовой пояс дашборда по умолчанию
const DefaultTimezone = "Asia/Kolkata"

// Business constants
const (
	// SlotDuration длительность одного слота звонка
	SlotDuration = 30 * time.Minute

	// CallStatusUpdateGrace время после окончания звонка, в течение которого
	// консультант ещё может обновить статус без пометки
	CallStatusUpdateGrace = time.Hour

	TeamStatusActive = "Active"

	// ConvertedStatusFilter значение convertedStatus, включающее фильтр по конверсии
	ConvertedStatusFilter = "Converted"

	// ConvertedFlagYes значение fld_converted_sts у сконвертированной брони (без учёта регистра)
	ConvertedFlagYes = "yes"

	ConsultationStatusAccept = "Accept"

	CallStatusUpdatePendingLabel = "Call status updation pending"
)

// Day headings
const (
	HeadingToday    = "Today"
	HeadingTomorrow = "Tomorrow"
)
