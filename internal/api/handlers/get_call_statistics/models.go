package get_call_statistics

import (
	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
	getCallStatistics "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_call_statistics"
)

// CallStatisticsRequest тело запроса статистики
type CallStatisticsRequest struct {
	handlers.FilterParams
}

// CallStatisticsResponse данные ответа
type CallStatisticsResponse struct {
	Total int64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CallStatisticsRequest) ToUseCaseRequest() *getCallStatistics.Request {
	return &getCallStatistics.Request{Filter: r.ToFilterContext()}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getCallStatistics.Response) CallStatisticsResponse {
	return CallStatisticsResponse{Total: resp.Total}
}
