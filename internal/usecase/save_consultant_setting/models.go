package save_consultant_setting

import "github.com/m04kA/SMC-CallDashboard/internal/domain"

// Request модель запроса на сохранение рабочих часов.
// Дни со значением nil не изменяются, пустая строка очищает день.
type Request struct {
	ConsultantID *int64
	TimeData     domain.DayValues
}

// Response модель ответа с результатом сохранения
type Response struct {
	ConsultantID int64
	Created      bool  // true - записи не было, создана новая
	RowsAffected int64 // количество обновленных строк
}
