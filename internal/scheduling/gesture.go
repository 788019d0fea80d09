package scheduling

import (
	"errors"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
)

// ErrUnknownGesture возвращается для неизвестного типа жеста или пустого бронирования
var ErrUnknownGesture = errors.New("scheduling: unknown gesture")

// GestureKind тип жеста на календаре
type GestureKind string

const (
	GestureDrag        GestureKind = "drag"
	GestureResizeStart GestureKind = "resize-start"
	GestureResizeEnd   GestureKind = "resize-end"
)

// IsValid проверяет тип жеста
func (k GestureKind) IsValid() bool {
	return k == GestureDrag || k == GestureResizeStart || k == GestureResizeEnd
}

// Gesture один drag или resize от нажатия до отпускания.
//
// Протокол из трёх фаз:
//   - BeginGesture фиксирует копию бронирования;
//   - Preview вызывается на каждое движение указателя, ничего не проверяет;
//   - Commit вызывается один раз при отпускании и проверяет конфликты и правила.
type Gesture struct {
	Booking domain.Booking
	Kind    GestureKind
}

// BeginGesture начинает жест над бронированием
func BeginGesture(b *domain.Booking, kind GestureKind) (Gesture, error) {
	if b == nil || !kind.IsValid() {
		return Gesture{}, ErrUnknownGesture
	}
	return Gesture{Booking: *b, Kind: kind}, nil
}

// Target возвращает интервал и номер, куда сейчас указывает жест.
// Для resize номер не меняется, а "перепрыгнувшая" граница даёт исходный интервал.
func (g Gesture) Target(dayDelta int, targetRoomID int64) (Interval, int64) {
	switch g.Kind {
	case GestureDrag:
		return dragCandidate(&g.Booking, dayDelta, targetRoomID)
	case GestureResizeStart:
		iv, _ := resizeCandidate(&g.Booking, ResizeStart, dayDelta)
		return iv, g.Booking.RoomID
	case GestureResizeEnd:
		iv, _ := resizeCandidate(&g.Booking, ResizeEnd, dayDelta)
		return iv, g.Booking.RoomID
	default:
		return IntervalOf(&g.Booking), g.Booking.RoomID
	}
}

// Preview положение блока для визуальной обратной связи. Только чтение, без проверок.
func (g Gesture) Preview(dayDelta int, targetRoomID int64, w Window) Position {
	iv, _ := g.Target(dayDelta, targetRoomID)
	return MapToCoordinates(iv, w)
}

// Commit проверяет итоговое положение на свежем снимке бронирований.
// room - запись номера, в котором окажется бронирование (nil - правила длительности пропускаются).
func (g Gesture) Commit(dayDelta int, targetRoomID int64, bookings []*domain.Booking, room *domain.Room) MutationResult {
	b := g.Booking

	switch g.Kind {
	case GestureDrag:
		return ResolveDrag(DragRequest{
			Booking:      &b,
			DayDelta:     dayDelta,
			TargetRoomID: targetRoomID,
			TargetRoom:   room,
		}, bookings)
	case GestureResizeStart:
		return ResolveResize(ResizeRequest{Booking: &b, Direction: ResizeStart, DayDelta: dayDelta, Room: room}, bookings)
	case GestureResizeEnd:
		return ResolveResize(ResizeRequest{Booking: &b, Direction: ResizeEnd, DayDelta: dayDelta, Room: room}, bookings)
	default:
		return reject(&b, ReasonInvalidRange, nil)
	}
}

// ResizeDirection возвращает направление resize для жеста (пусто для drag)
func (k GestureKind) ResizeDirection() ResizeDirection {
	switch k {
	case GestureResizeStart:
		return ResizeStart
	case GestureResizeEnd:
		return ResizeEnd
	default:
		return ""
	}
}
