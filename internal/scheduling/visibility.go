package scheduling

import (
	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// IsVisible быстрая проверка перед MapToCoordinates: пересекается ли интервал с окном.
// Использует тот же Overlaps, что и проверка конфликтов, поэтому граничные случаи
// (выезд в день начала окна) обрабатываются одинаково.
func IsVisible(iv Interval, windowStart types.Date, days int) bool {
	return Overlaps(iv, Interval{Start: windowStart, End: windowStart.AddDays(days)})
}

// FilterVisible оставляет (в исходном порядке) бронирования, попадающие в окно.
// Статус не учитывается.
func FilterVisible(bookings []*domain.Booking, w Window) []*domain.Booking {
	visible := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil && IsVisible(IntervalOf(b), w.Start, w.Days) {
			visible = append(visible, b)
		}
	}
	return visible
}
