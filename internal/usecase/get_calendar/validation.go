package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// buildWindow рассчитывает окно календаря по параметрам запроса
func buildWindow(req *Request, settings Settings) (scheduling.Window, error) {
	if req.UserID <= 0 || req.PropertyID <= 0 {
		return scheduling.Window{}, fmt.Errorf("%w: userID and propertyID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() {
		return scheduling.Window{}, fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	days := req.Days
	if days == 0 {
		var err error
		days, err = viewDays(req.View, req.Start)
		if err != nil {
			return scheduling.Window{}, err
		}
	}
	if days < 1 || days > settings.MaxDays {
		return scheduling.Window{}, fmt.Errorf("%w: days must be in 1..%d", ErrInvalidInput, settings.MaxDays)
	}

	level := settings.DefaultZoom
	if req.Zoom != nil {
		level = *req.Zoom
	}
	if level < 0 || level >= len(settings.PixelsPerDay) {
		return scheduling.Window{}, fmt.Errorf("%w: zoom must be in 0..%d", ErrInvalidInput, len(settings.PixelsPerDay)-1)
	}

	return scheduling.Window{Start: req.Start, Days: days, PixelsPerDay: settings.PixelsPerDay[level]}, nil
}

func viewDays(view View, start types.Date) (int, error) {
	switch view {
	case ViewDay:
		return 1, nil
	case "", ViewWeek:
		return 7, nil
	case ViewMonth:
		// Количество дней в месяце start
		t := start.Time()
		return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
	default:
		return 0, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, view)
	}
}
