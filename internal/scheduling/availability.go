package scheduling

import (
	"math"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// RoomAvailability доступность номера на период
type RoomAvailability struct {
	Room                    *domain.Room
	IsAvailable             bool // нет ни одного активного бронирования в периоде
	ConflictingBookingCount int
}

// ComputeAvailability для каждого номера (в порядке rooms) считает количество активных
// бронирований, пересекающихся с [start, end).
// Номер свободен, только если таких бронирований нет.
// Для пустого периода (end <= start) все номера считаются свободными.
func ComputeAvailability(rooms []*domain.Room, bookings []*domain.Booking, start, end types.Date) []RoomAvailability {
	result := make([]RoomAvailability, 0, len(rooms))
	period := Interval{Start: start, End: end}

	for _, room := range rooms {
		if room == nil {
			continue
		}

		count := 0
		if period.IsValid() {
			count = CountConflicts(Candidate{RoomID: room.ID, Interval: period}, 0, bookings)
		}

		result = append(result, RoomAvailability{
			Room:                    room,
			IsAvailable:             count == 0,
			ConflictingBookingCount: count,
		})
	}

	return result
}

// ComputeOccupancy возвращает загрузку в процентах (0..100) за период [start, end):
// занятые номеро-дни / (количество номеров * количество дней), с округлением до целого.
// Каждый номеро-день учитывается один раз, даже если в данных есть пересекающиеся брони.
// При нуле номеров или дней возвращает 0.
func ComputeOccupancy(bookings []*domain.Booking, rooms []*domain.Room, start, end types.Date) int {
	days := start.DaysUntil(end)

	index := make(map[int64]int, len(rooms))
	for _, room := range rooms {
		if room == nil {
			continue
		}
		if _, seen := index[room.ID]; !seen {
			index[room.ID] = len(index)
		}
	}

	if days <= 0 || len(index) == 0 {
		return 0
	}

	// occupied[i*days+d] - номер i занят в день start+d
	occupied := make([]bool, len(index)*days)
	occupiedCount := 0

	for _, b := range bookings {
		if b == nil || b.IsCancelled() {
			continue
		}
		i, ok := index[b.RoomID]
		if !ok {
			continue
		}

		// Пересечение брони с периодом в индексах дней
		from := max(start.DaysUntil(b.CheckIn), 0)
		to := min(start.DaysUntil(b.CheckOut), days)

		for d := from; d < to; d++ {
			cell := i*days + d
			if !occupied[cell] {
				occupied[cell] = true
				occupiedCount++
			}
		}
	}

	total := len(index) * days
	return int(math.Round(float64(occupiedCount) * 100 / float64(total)))
}
