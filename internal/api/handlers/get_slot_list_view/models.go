package get_slot_list_view

import (
	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	getSlotList "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_slot_list"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

// SlotListRequest тело запроса: фильтры дашборда и необязательное окно дат
type SlotListRequest struct {
	handlers.FilterParams
	DateFrom types.LooseString `json:"date_from"`
	DateTo   types.LooseString `json:"date_to"`
}

// SlotListResponse данные ответа
type SlotListResponse struct {
	DateFrom string        `json:"date_from"`
	DateTo   string        `json:"date_to"`
	Days     []DayResponse `json:"days"`
}

// DayResponse день списка
type DayResponse struct {
	Date    string         `json:"date"`
	Heading string         `json:"heading"`
	Total   int            `json:"total"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse получасовой слот дня
type SlotResponse struct {
	Label    string            `json:"label"`
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

// BookingResponse бронь слота с отметкой о необновленном статусе звонка
type BookingResponse struct {
	handlers.BookingRow
	CallStatusUpdatePending bool   `json:"call_status_update_pending"`
	CallStatusLabel         string `json:"call_status_label,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *SlotListRequest) ToUseCaseRequest() *getSlotList.Request {
	req := &getSlotList.Request{Filter: r.ToFilterContext()}
	if !r.DateFrom.IsEmpty() {
		dateFrom := r.DateFrom.String()
		req.DateFrom = &dateFrom
	}
	if !r.DateTo.IsEmpty() {
		dateTo := r.DateTo.String()
		req.DateTo = &dateTo
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getSlotList.Response) SlotListResponse {
	result := SlotListResponse{
		DateFrom: resp.DateFrom,
		DateTo:   resp.DateTo,
		Days:     make([]DayResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		dayResp := DayResponse{
			Date:    day.Date,
			Heading: day.Heading,
			Total:   day.Total,
			Slots:   make([]SlotResponse, 0, len(day.Buckets)),
		}
		for _, bucket := range day.Buckets {
			slot := SlotResponse{
				Label:    bucket.Label,
				Count:    bucket.Count,
				Bookings: make([]BookingResponse, 0, len(bucket.Bookings)),
			}
			for _, item := range bucket.Bookings {
				booking := BookingResponse{
					BookingRow:              handlers.NewBookingRow(item.Booking),
					CallStatusUpdatePending: item.CallStatusUpdatePending,
				}
				if item.CallStatusUpdatePending {
					booking.CallStatusLabel = domain.CallStatusUpdatePendingLabel
				}
				slot.Bookings = append(slot.Bookings, booking)
			}
			dayResp.Slots = append(dayResp.Slots, slot)
		}
		result.Days = append(result.Days, dayResp)
	}

	return result
}
