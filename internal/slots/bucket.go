package slots

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

const (
	// InvalidLabel метка корзины для брони без корректных даты или времени
	InvalidLabel = "Invalid"

	labelSeparator = " - "
	bucketMinutes  = 30
	minutesInDay   = 24 * 60
)

// ErrInvalidLabel возвращается, когда строка не является меткой получасового слота
var ErrInvalidLabel = errors.New("slots: invalid slot label")

// Bucket получасовая корзина "h:mm AM - h:mm AM"
type Bucket struct {
	Label string
	// StartMinutes начало корзины в минутах от полуночи по местному времени
	StartMinutes int
	Valid        bool
}

// InvalidBucket корзина-заглушка, сортируется после всех корректных
func InvalidBucket() Bucket {
	return Bucket{Label: InvalidLabel}
}

// Less порядок корзин: по времени начала, Invalid в конце
func (b Bucket) Less(other Bucket) bool {
	if b.Valid != other.Valid {
		return b.Valid
	}
	if b.StartMinutes != other.StartMinutes {
		return b.StartMinutes < other.StartMinutes
	}
	return b.Label < other.Label
}

// Bucketer раскладывает время брони по получасовым корзинам.
// Безопасен для конкурентного использования.
type Bucketer struct {
	defaultLoc *time.Location
}

// NewBucketer создает раскладчик с часовым поясом по умолчанию
func NewBucketer(defaultLoc *time.Location) *Bucketer {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &Bucketer{defaultLoc: defaultLoc}
}

// Location возвращает локацию по имени; пустое или неизвестное имя даёт локацию по умолчанию
func (b *Bucketer) Location(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return b.defaultLoc
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return b.defaultLoc
	}
	return loc
}

// Bucket корзина для даты "YYYY-MM-DD", времени "3:30 PM" (или "15:30") и часового пояса.
// Метка строится по настенному времени слота, переходы на летнее время её не сдвигают.
func (b *Bucketer) Bucket(date, slot, tz string) Bucket {
	_, clock, _, ok := b.parseSlot(date, slot, tz)
	if !ok {
		return InvalidBucket()
	}
	return bucketAt(clock)
}

// BucketOf корзина брони
func (b *Bucketer) BucketOf(booking *domain.Booking) Bucket {
	return b.Bucket(booking.BookingDate, booking.Slot(), booking.TimezoneName())
}

// SlotStart момент начала слота в его часовом поясе
func (b *Bucketer) SlotStart(date, slot, tz string) (time.Time, bool) {
	day, clock, loc, ok := b.parseSlot(date, slot, tz)
	if !ok {
		return time.Time{}, false
	}
	return clock.On(day, loc), true
}

func (b *Bucketer) parseSlot(date, slot, tz string) (time.Time, types.TimeString, *time.Location, bool) {
	date, slot = strings.TrimSpace(date), strings.TrimSpace(slot)
	if date == "" || slot == "" {
		return time.Time{}, types.TimeString{}, nil, false
	}

	loc := b.Location(tz)
	day, err := time.ParseInLocation(domain.DateFormat, date, loc)
	if err != nil {
		return time.Time{}, types.TimeString{}, nil, false
	}
	clock, err := types.NewTimeStringFromString(slot)
	if err != nil {
		return time.Time{}, types.TimeString{}, nil, false
	}

	return day, clock, loc, true
}

// bucketAt округляет время суток вниз до :00 или :30
func bucketAt(clock types.TimeString) Bucket {
	start := clock.FloorTo(bucketMinutes)
	return Bucket{
		Label:        FormatLabel(start),
		StartMinutes: start.Minutes(),
		Valid:        true,
	}
}

// FormatLabel метка слота, начинающегося в start; слот может переходить через полночь
func FormatLabel(start types.TimeString) string {
	return start.Format12h() + labelSeparator + slotEnd(start).Format12h()
}

func slotEnd(start types.TimeString) types.TimeString {
	end, _ := types.NewTimeStringFromMinutes((start.Minutes() + bucketMinutes) % minutesInDay)
	return end
}

// ParseLabel проверяет метку "h:mm AM - h:mm AM": конец ровно на 30 минут позже начала
func ParseLabel(label string) (Bucket, error) {
	parts := strings.Split(label, labelSeparator)
	if len(parts) != 2 {
		return Bucket{}, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}

	start, err := types.NewTimeStringFromString(parts[0])
	if err != nil {
		return Bucket{}, fmt.Errorf("%w: %q: %v", ErrInvalidLabel, label, err)
	}
	end, err := types.NewTimeStringFromString(parts[1])
	if err != nil {
		return Bucket{}, fmt.Errorf("%w: %q: %v", ErrInvalidLabel, label, err)
	}

	if slotEnd(start) != end {
		return Bucket{}, fmt.Errorf("%w: %q: slot must last %d minutes", ErrInvalidLabel, label, bucketMinutes)
	}

	return Bucket{Label: label, StartMinutes: start.Minutes(), Valid: true}, nil
}
