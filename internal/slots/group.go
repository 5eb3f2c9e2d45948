package slots

import (
	"sort"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
)

// BucketCount количество броней в корзине
type BucketCount struct {
	Bucket
	Count int
}

// Schedule брони, сгруппированные по дням и получасовым корзинам
type Schedule struct {
	days map[string][]BucketCount
}

// GroupByDay группирует брони по fld_booking_date, внутри дня - по корзинам.
// Каждая бронь учитывается ровно один раз, корзины дня упорядочены по началу, Invalid в конце.
func GroupByDay(bookings []*domain.Booking, bucketer *Bucketer) Schedule {
	counts := make(map[string]map[string]*BucketCount)

	for _, booking := range bookings {
		day := booking.BookingDate
		if counts[day] == nil {
			counts[day] = make(map[string]*BucketCount)
		}

		bucket := bucketer.BucketOf(booking)
		if entry, ok := counts[day][bucket.Label]; ok {
			entry.Count++
			continue
		}
		counts[day][bucket.Label] = &BucketCount{Bucket: bucket, Count: 1}
	}

	schedule := Schedule{days: make(map[string][]BucketCount, len(counts))}
	for day, buckets := range counts {
		list := make([]BucketCount, 0, len(buckets))
		for _, entry := range buckets {
			list = append(list, *entry)
		}
		sort.Slice(list, func(i, j int) bool {
			return list[i].Bucket.Less(list[j].Bucket)
		})
		schedule.days[day] = list
	}

	return schedule
}

// Days дни, в которых есть брони, по возрастанию
func (s Schedule) Days() []string {
	days := make([]string, 0, len(s.days))
	for day := range s.days {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Buckets корзины дня по порядку
func (s Schedule) Buckets(day string) []BucketCount {
	return s.days[day]
}

// Total количество броней за день
func (s Schedule) Total(day string) int {
	total := 0
	for _, bucket := range s.days[day] {
		total += bucket.Count
	}
	return total
}

// BookingsIn брони дня, попавшие в корзину label, по возрастанию времени слота
func BookingsIn(bookings []*domain.Booking, day, label string, bucketer *Bucketer) []*domain.Booking {
	type item struct {
		booking *domain.Booking
		minutes int
		valid   bool
	}

	var items []item
	for _, booking := range bookings {
		if booking.BookingDate != day {
			continue
		}
		if bucketer.BucketOf(booking).Label != label {
			continue
		}
		start, ok := bucketer.SlotStart(booking.BookingDate, booking.Slot(), booking.TimezoneName())
		items = append(items, item{
			booking: booking,
			minutes: start.Hour()*60 + start.Minute(),
			valid:   ok,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].valid != items[j].valid {
			return items[i].valid
		}
		return items[i].minutes < items[j].minutes
	})

	result := make([]*domain.Booking, 0, len(items))
	for _, it := range items {
		result = append(result, it.booking)
	}
	return result
}
