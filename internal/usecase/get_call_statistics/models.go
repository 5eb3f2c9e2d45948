package get_call_statistics

import "github.com/m04kA/SMC-CallDashboard/internal/domain"

// Request модель запроса статистики звонков
type Request struct {
	Filter domain.FilterContext // фильтры и сессия пользователя в том виде, в каком их прислал дашборд
}

// Response модель ответа со статистикой
type Response struct {
	Total int64               // количество броней, подходящих под фильтр
	Rule  domain.IdentityRule // сработавшее правило ограничения по пользователю
}
