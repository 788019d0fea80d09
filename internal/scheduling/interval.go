// Package scheduling движок расписания и конфликтов бронирований.
//
// Функции работают со снимком бронирований и номеров, переданным вызывающим кодом,
// и возвращают новые значения. Пакет не ходит в I/O, не хранит состояние между
// вызовами и не меняет входные данные.
package scheduling

import (
	"errors"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// ErrInvalidRange возвращается, если интервал не заканчивается строго позже начала
var ErrInvalidRange = errors.New("scheduling: check-out must be after check-in")

// Interval полуинтервал календарных дней [Start, End).
// Start занят, End нет: гость, выезжающий в End, освобождает номер в тот же день.
type Interval struct {
	Start types.Date
	End   types.Date
}

// NewInterval проверяет границы и создает интервал
func NewInterval(start, end types.Date) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if !iv.IsValid() {
		return Interval{}, ErrInvalidRange
	}
	return iv, nil
}

// IntervalOf возвращает занятый бронированием интервал
func IntervalOf(b *domain.Booking) Interval {
	return Interval{Start: b.CheckIn, End: b.CheckOut}
}

// IsValid возвращает true, если интервал покрывает хотя бы одну ночь
func (iv Interval) IsValid() bool {
	return iv.Start.Before(iv.End)
}

// Shift сдвигает обе границы на одинаковое число дней
func (iv Interval) Shift(days int) Interval {
	return Interval{Start: iv.Start.AddDays(days), End: iv.End.AddDays(days)}
}

// Nights количество ночей между началом и концом
func Nights(iv Interval) int {
	return iv.Start.DaysUntil(iv.End)
}

// Contains проверяет, что день лежит внутри [start, end)
func Contains(iv Interval, day types.Date) bool {
	return !day.Before(iv.Start) && day.Before(iv.End)
}

// Overlaps проверяет, что у a и b есть общий день.
// Стык (a.End == b.Start) не пересечение: выезд и заезд в один день допустимы.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
