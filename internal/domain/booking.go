package domain

import "time"

// Booking бронь звонка консультанта (tbl_booking).
// Сервис только читает брони, поэтому все необязательные колонки - указатели.
type Booking struct {
	ID                    int64
	ConsultantID          *int64
	SecondaryConsultantID *int64
	ThirdConsultantID     *int64
	AddedBy               *int64  // CRM, создавший бронь
	TeamID                *string // список id команд через запятую
	SaleType              *string
	ConvertedStatus       *string
	BookingDate           string // YYYY-MM-DD
	BookingSlot           *string
	ConsultationStatus    *string
	CallRequestStatus     *string
	Timezone              *string
	AddedOn               *string
}

// Slot возвращает время слота или пустую строку
func (b *Booking) Slot() string {
	if b.BookingSlot == nil {
		return ""
	}
	return *b.BookingSlot
}

// TimezoneName возвращает часовой пояс брони или пустую строку
func (b *Booking) TimezoneName() string {
	if b.Timezone == nil {
		return ""
	}
	return *b.Timezone
}

// IsAccepted returns true if the consultant accepted the call
func (b *Booking) IsAccepted() bool {
	return b.ConsultationStatus != nil && *b.ConsultationStatus == ConsultationStatusAccept
}

// HasConsultant returns true if the consultant is assigned in any of the three positions
func (b *Booking) HasConsultant(consultantID int64) bool {
	for _, id := range []*int64{b.ConsultantID, b.SecondaryConsultantID, b.ThirdConsultantID} {
		if id != nil && *id == consultantID {
			return true
		}
	}
	return false
}

// IsCallStatusUpdatePending сообщает, что принятый звонок закончился больше часа назад,
// а статус по нему так и не обновлён.
// Брони прошлых дней помечаются всегда, брони на сегодня - после slot+30m+1h.
// Даты и время сравниваются в локации loc.
func (b *Booking) IsCallStatusUpdatePending(now time.Time, loc *time.Location, slotStart *time.Time) bool {
	if !b.IsAccepted() {
		return false
	}

	localNow := now.In(loc)
	today := localNow.Format(DateFormat)

	if b.BookingDate < today {
		return true
	}
	if b.BookingDate != today || slotStart == nil {
		return false
	}

	deadline := slotStart.Add(SlotDuration + CallStatusUpdateGrace)
	return !localNow.Before(deadline)
}
