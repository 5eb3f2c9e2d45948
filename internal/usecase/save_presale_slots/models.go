package save_presale_slots

import "github.com/m04kA/SMC-CallDashboard/internal/slots"

// Request модель запроса на замену пресейл-слотов пользователя
type Request struct {
	UserID *int64         // ID пользователя, обязателен
	Slots  slots.DaySlots // выбранные метки по дням недели
}

// Response модель ответа с результатом замены
type Response struct {
	ID           int64 // ID новой записи
	UserID       int64 // ID пользователя
	Replaced     int64 // количество удаленных старых записей
	SelectedDays int   // количество дней с выбранными слотами
}
