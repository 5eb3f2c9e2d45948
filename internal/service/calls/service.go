package calls

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// Service сервис звонков на сегодня
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса звонков.
// location определяет, какой день считается сегодняшним.
func NewService(bookingRepo BookingRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// GetParticularStatusCalls брони на сегодня, у которых статус запроса звонка
// и статус консультации равны status. crmID ограничивает выборку создателем брони.
func (s *Service) GetParticularStatusCalls(ctx context.Context, status string, crmID *int64) ([]*domain.Booking, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	filter := domain.StatusCallsFilter{
		Status: status,
		Date:   domain.Today(s.timeProvider.Now(), s.location),
		CRMID:  crmID,
	}

	bookings, err := s.bookingRepo.GetParticularStatusCalls(ctx, filter)
	if err != nil {
		s.logger.Error("GetParticularStatusCalls: repository error for status=%s, date=%s: %v", status, filter.Date, err)
		return nil, fmt.Errorf("%w: GetParticularStatusCalls - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetParticularStatusCalls: found %d calls with status=%s on %s", len(bookings), status, filter.Date)
	return bookings, nil
}
