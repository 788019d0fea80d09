package gesture

import (
	"time"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// Settings параметры окна календаря и времени жизни жеста
type Settings struct {
	PixelsPerDay []float64 // ширина дня по уровням зума
	DefaultZoom  int
	MaxDays      int
	TTL          time.Duration
}

// BeginRequest начало жеста (pointer down)
type BeginRequest struct {
	UserID    int64
	BookingID int64
	Kind      scheduling.GestureKind
}

// BeginResponse созданная сессия жеста
type BeginResponse struct {
	GestureID string
	Kind      scheduling.GestureKind
	Booking   domain.Booking
	ExpiresAt time.Time
}

// PreviewRequest положение указателя во время жеста
type PreviewRequest struct {
	UserID       int64
	GestureID    string
	DayDelta     int
	TargetRoomID int64 // только для drag, 0 - тот же номер
	WindowStart  types.Date
	Days         int
	Zoom         *int
}

// PreviewResponse куда сейчас указывает жест. Конфликты не проверяются.
type PreviewResponse struct {
	RoomID       int64
	CheckIn      types.Date
	CheckOut     types.Date
	PixelsPerDay float64
	Position     scheduling.Position
}

// CommitRequest завершение жеста (pointer up)
type CommitRequest struct {
	UserID       int64
	GestureID    string
	DayDelta     int
	TargetRoomID int64
	Override     bool
}
