package handlers

import "github.com/m04kA/SMC-CallDashboard/internal/domain"

// BookingRow бронь в JSON с именами колонок tbl_booking, как их ждет дашборд
type BookingRow struct {
	ID                    int64   `json:"id"`
	ConsultantID          *int64  `json:"fld_consultantid"`
	SecondaryConsultantID *int64  `json:"fld_secondary_consultant_id"`
	ThirdConsultantID     *int64  `json:"fld_third_consultantid"`
	AddedBy               *int64  `json:"fld_addedby"`
	TeamID                *string `json:"fld_teamid"`
	SaleType              *string `json:"fld_sale_type"`
	ConvertedStatus       *string `json:"fld_converted_sts"`
	BookingDate           string  `json:"fld_booking_date"`
	BookingSlot           *string `json:"fld_booking_slot"`
	ConsultationStatus    *string `json:"fld_consultation_sts"`
	CallRequestStatus     *string `json:"fld_call_request_sts"`
	Timezone              *string `json:"fld_timezone"`
	AddedOn               *string `json:"fld_addedon"`
}

// NewBookingRow конвертирует доменную бронь в строку ответа
func NewBookingRow(b *domain.Booking) BookingRow {
	return BookingRow{
		ID:                    b.ID,
		ConsultantID:          b.ConsultantID,
		SecondaryConsultantID: b.SecondaryConsultantID,
		ThirdConsultantID:     b.ThirdConsultantID,
		AddedBy:               b.AddedBy,
		TeamID:                b.TeamID,
		SaleType:              b.SaleType,
		ConvertedStatus:       b.ConvertedStatus,
		BookingDate:           b.BookingDate,
		BookingSlot:           b.BookingSlot,
		ConsultationStatus:    b.ConsultationStatus,
		CallRequestStatus:     b.CallRequestStatus,
		Timezone:              b.Timezone,
		AddedOn:               b.AddedOn,
	}
}

// NewBookingRows конвертирует список броней, пустой список сериализуется как []
func NewBookingRows(bookings []*domain.Booking) []BookingRow {
	rows := make([]BookingRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, NewBookingRow(b))
	}
	return rows
}
