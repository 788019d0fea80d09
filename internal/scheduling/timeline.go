package scheduling

import "github.com/m04kA/SMC-StayCalendar/pkg/types"

// Window видимая область календаря: первый день, количество дней и масштаб.
// Используется только для отрисовки, никогда для проверки конфликтов.
type Window struct {
	Start        types.Date
	Days         int
	PixelsPerDay float64
}

// End возвращает первый день после окна
func (w Window) End() types.Date {
	return w.Start.AddDays(w.Days)
}

// Interval возвращает окно как полуоткрытый интервал
func (w Window) Interval() Interval {
	return Interval{Start: w.Start, End: w.End()}
}

// Position положение блока бронирования на временной шкале
type Position struct {
	Offset         float64 // отступ от начала окна в пикселях
	Width          float64 // ширина видимой части в пикселях
	StartDayIndex  int     // индекс дня заезда относительно начала окна (может быть < 0)
	EndDayIndex    int     // индекс дня выезда относительно начала окна (может быть > Days)
	Nights         int
	ClippedAtStart bool // заезд раньше начала окна
	ClippedAtEnd   bool // выезд позже конца окна
	Visible        bool // false - блок целиком вне окна, рисовать не нужно
}

// MapToCoordinates переводит интервал в координаты окна с обрезкой по его границам.
// Если после обрезки ширина <= 0, Visible = false и блок рисовать нельзя.
func MapToCoordinates(iv Interval, w Window) Position {
	startIdx := w.Start.DaysUntil(iv.Start)
	endIdx := w.Start.DaysUntil(iv.End)

	visibleStart := clamp(startIdx, 0, w.Days)
	visibleEnd := clamp(endIdx, 0, w.Days)

	pos := Position{
		StartDayIndex:  startIdx,
		EndDayIndex:    endIdx,
		Nights:         Nights(iv),
		ClippedAtStart: startIdx < 0,
		ClippedAtEnd:   endIdx > w.Days,
	}

	if visibleEnd-visibleStart <= 0 {
		return pos
	}

	pos.Offset = float64(visibleStart) * w.PixelsPerDay
	pos.Width = float64(visibleEnd-visibleStart) * w.PixelsPerDay
	pos.Visible = pos.Width > 0
	return pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
