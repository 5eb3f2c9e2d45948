package get_call_statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// UseCase use case подсчета броней для плиток статистики
type UseCase struct {
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	weekStart    time.Weekday
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location и weekStart задают границы периодов Today/Week/Month/Last.
func NewUseCase(
	bookingRepo BookingRepository,
	metrics Metrics,
	location *time.Location,
	weekStart time.Weekday,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		weekStart:    weekStart,
		logger:       logger,
	}
}

// Execute выполняет use case подсчета броней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Выбираем ровно одно правило ограничения по пользователю
	identity := req.Filter.Identity()

	filter := domain.StatsFilter{
		Identity:      identity,
		SaleType:      req.Filter.SaleType,
		ConvertedOnly: req.Filter.ConvertedOnly(),
	}

	// 2. Границы периода в часовом поясе дашборда
	if period, ok := domain.ResolvePeriod(req.Filter.FilterType, uc.timeProvider.Now(), uc.location, uc.weekStart); ok {
		filter.Period = &period
	}

	uc.logger.Info("GetCallStatistics: rule=%s, filter_type=%q, sale_type=%q, converted_only=%t",
		identity.Rule, req.Filter.FilterType, filter.SaleType, filter.ConvertedOnly)

	// 3. Считаем брони
	total, err := uc.bookingRepo.CountByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCallStatistics: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	uc.metrics.RecordCallStatistics(identity.Rule.String())

	return &Response{Total: total, Rule: identity.Rule}, nil
}
