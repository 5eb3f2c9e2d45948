package get_slot_list

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/slots"
)

// UseCase use case списка броней по дням и получасовым слотам
type UseCase struct {
	bookingRepo  BookingRepository
	bucketer     *slots.Bucketer
	timeProvider TimeProvider
	location     *time.Location
	window       Window
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	bucketer *slots.Bucketer,
	location *time.Location,
	window Window,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		bucketer:     bucketer,
		timeProvider: &RealTimeProvider{},
		location:     location,
		window:       window,
		logger:       logger,
	}
}

// Execute выполняет use case списка слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.location)

	// 1. Окно дат
	from, to, err := resolveWindow(req, today, uc.window)
	if err != nil {
		uc.logger.Warn("GetSlotList: validation failed: %v", err)
		return nil, err
	}

	filter := domain.ScheduleFilter{
		Identity: req.Filter.Identity(),
		SaleType: req.Filter.SaleType,
		DateFrom: from.Format(domain.DateFormat),
		DateTo:   to.Format(domain.DateFormat),
	}

	// 2. Брони окна
	bookings, err := uc.bookingRepo.GetForSchedule(ctx, filter)
	if err != nil {
		uc.logger.Error("GetSlotList: failed to get bookings from %s to %s: %v", filter.DateFrom, filter.DateTo, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Группировка по дням и корзинам
	schedule := slots.GroupByDay(bookings, uc.bucketer)

	response := &Response{
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
		Days:     make([]Day, 0),
	}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateFormat)
		response.Days = append(response.Days, Day{
			Date:    date,
			Heading: dayHeading(day, today),
			Total:   schedule.Total(date),
			Buckets: uc.buckets(bookings, schedule, date, now),
		})
	}

	uc.logger.Info("GetSlotList: rule=%s, window=%s..%s, bookings=%d",
		filter.Identity.Rule, filter.DateFrom, filter.DateTo, len(bookings))

	return response, nil
}

func (uc *UseCase) buckets(bookings []*domain.Booking, schedule slots.Schedule, date string, now time.Time) []Bucket {
	counts := schedule.Buckets(date)
	result := make([]Bucket, 0, len(counts))

	for _, count := range counts {
		inBucket := slots.BookingsIn(bookings, date, count.Label, uc.bucketer)
		items := make([]Item, 0, len(inBucket))
		for _, booking := range inBucket {
			var slotStart *time.Time
			if start, ok := uc.bucketer.SlotStart(booking.BookingDate, booking.Slot(), booking.TimezoneName()); ok {
				slotStart = &start
			}
			items = append(items, Item{
				Booking:                 booking,
				CallStatusUpdatePending: booking.IsCallStatusUpdatePending(now, uc.location, slotStart),
			})
		}

		result = append(result, Bucket{
			Label:    count.Label,
			Count:    count.Count,
			Bookings: items,
		})
	}

	return result
}

// dayHeading заголовок дня относительно сегодняшнего
func dayHeading(day, today time.Time) string {
	switch {
	case day.Equal(today):
		return domain.HeadingToday
	case day.Equal(today.AddDate(0, 0, 1)):
		return domain.HeadingTomorrow
	default:
		return day.Format(domain.DayHeadingFormat)
	}
}
