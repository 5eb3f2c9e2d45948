package get_slot_list

import "github.com/m04kA/SMC-CallDashboard/internal/domain"

// Request модель запроса списка слотов
type Request struct {
	Filter   domain.FilterContext // ограничение по пользователю и тип продажи
	DateFrom *string              // YYYY-MM-DD, по умолчанию сегодня минус PastDays
	DateTo   *string              // YYYY-MM-DD, по умолчанию сегодня плюс FutureDays
}

// Response модель ответа: все дни окна по порядку
type Response struct {
	DateFrom string
	DateTo   string
	Days     []Day
}

// Day брони одного дня
type Day struct {
	Date    string   // YYYY-MM-DD
	Heading string   // Today, Tomorrow или "Monday, 02 Jan 2006"
	Total   int      // количество броней за день
	Buckets []Bucket // получасовые корзины по возрастанию, Invalid в конце
}

// Bucket получасовая корзина
type Bucket struct {
	Label    string
	Count    int
	Bookings []Item // брони корзины по времени слота
}

// Item бронь в корзине
type Item struct {
	Booking                 *domain.Booking
	CallStatusUpdatePending bool // принятый звонок без обновленного статуса
}

// Window окно дат по умолчанию относительно сегодняшнего дня
type Window struct {
	PastDays   int
	FutureDays int
}
