package scheduling

import (
	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// RejectReason причина отклонения изменения
type RejectReason string

const (
	ReasonConflict     RejectReason = "conflict"
	ReasonInvalidRange RejectReason = "invalid-range"
	// ReasonStale бронирование изменилось после начала жеста, сдвиг отсчитан от старого положения
	ReasonStale RejectReason = "stale"
)

// ResizeDirection какая граница бронирования сдвигается
type ResizeDirection string

const (
	ResizeStart ResizeDirection = "start"
	ResizeEnd   ResizeDirection = "end"
)

// StayWarningKind тип нарушения правил длительности проживания
type StayWarningKind string

const (
	WarningMinStay StayWarningKind = "min-stay"
	WarningMaxStay StayWarningKind = "max-stay"
)

// StayWarning предупреждение о нарушении правил длительности.
// Не блокирует изменение само по себе, вызывающий код решает, разрешать ли override.
type StayWarning struct {
	Kind   StayWarningKind
	RoomID int64
	Nights int
	Limit  int
}

// MutationResult результат обработки drag/resize.
//
// Accepted = true: CheckIn/CheckOut/RoomID - новые значения для сохранения,
// Warnings может содержать нарушения правил длительности.
// Accepted = false: CheckIn/CheckOut/RoomID - исходные значения (UI возвращает блок на место),
// Reason объясняет отказ, ConflictingBooking заполнен при Reason == ReasonConflict.
type MutationResult struct {
	Accepted           bool
	CheckIn            types.Date
	CheckOut           types.Date
	RoomID             int64
	Reason             RejectReason
	ConflictingBooking *domain.Booking
	Warnings           []StayWarning
}

// HasWarnings возвращает true, если принятое изменение нарушает правила длительности
func (r MutationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Interval возвращает интервал из результата
func (r MutationResult) Interval() Interval {
	return Interval{Start: r.CheckIn, End: r.CheckOut}
}

// Changed возвращает true, если принятое изменение отличается от исходного бронирования
func (r MutationResult) Changed(b *domain.Booking) bool {
	return r.Accepted && (r.RoomID != b.RoomID || !r.CheckIn.Equal(b.CheckIn) || !r.CheckOut.Equal(b.CheckOut))
}

// DragRequest перенос бронирования.
// TargetRoomID = 0 - остаться в том же номере.
// TargetRoom - запись целевого номера для проверки правил длительности (nil - правила пропускаются).
type DragRequest struct {
	Booking      *domain.Booking
	DayDelta     int
	TargetRoomID int64
	TargetRoom   *domain.Room
}

// ResizeRequest изменение одной из границ бронирования
type ResizeRequest struct {
	Booking   *domain.Booking
	Direction ResizeDirection
	DayDelta  int
	Room      *domain.Room
}

// ResolveDrag вычисляет новый интервал при переносе и проверяет его.
// Сдвиг 0 в тот же номер - no-op, принимается без проверок.
// Сдвиг 0 в другой номер - допустимый перенос "те же даты, другой номер".
func ResolveDrag(req DragRequest, bookings []*domain.Booking) MutationResult {
	if req.Booking == nil {
		return MutationResult{Reason: ReasonInvalidRange}
	}

	candidate, roomID := dragCandidate(req.Booking, req.DayDelta, req.TargetRoomID)
	if req.DayDelta == 0 && roomID == req.Booking.RoomID {
		return accept(req.Booking.RoomID, IntervalOf(req.Booking), nil)
	}

	return validate(req.Booking, roomID, candidate, req.TargetRoom, bookings)
}

// ResolveResize вычисляет новый интервал при изменении одной границы и проверяет его.
// Если новая граница "перепрыгивает" противоположную, изменение отклоняется
// с ReasonInvalidRange и исходным интервалом.
func ResolveResize(req ResizeRequest, bookings []*domain.Booking) MutationResult {
	if req.Booking == nil {
		return MutationResult{Reason: ReasonInvalidRange}
	}

	if req.DayDelta == 0 && (req.Direction == ResizeStart || req.Direction == ResizeEnd) {
		return accept(req.Booking.RoomID, IntervalOf(req.Booking), nil)
	}

	candidate, ok := resizeCandidate(req.Booking, req.Direction, req.DayDelta)
	if !ok {
		return reject(req.Booking, ReasonInvalidRange, nil)
	}

	return validate(req.Booking, req.Booking.RoomID, candidate, req.Room, bookings)
}

// CheckStayRules возвращает нарушения минимальной/максимальной длительности для номера.
// Для неизвестного номера (nil) правила не проверяются.
func CheckStayRules(room *domain.Room, nights int) []StayWarning {
	if room == nil {
		return nil
	}

	var warnings []StayWarning
	if room.HasMinStay() && nights < room.MinStayNights {
		warnings = append(warnings, StayWarning{
			Kind:   WarningMinStay,
			RoomID: room.ID,
			Nights: nights,
			Limit:  room.MinStayNights,
		})
	}
	if room.HasMaxStay() && nights > room.MaxStayNights {
		warnings = append(warnings, StayWarning{
			Kind:   WarningMaxStay,
			RoomID: room.ID,
			Nights: nights,
			Limit:  room.MaxStayNights,
		})
	}
	return warnings
}

// validate общие шаги 2-4: диапазон, конфликт, правила длительности
func validate(b *domain.Booking, roomID int64, candidate Interval, room *domain.Room, bookings []*domain.Booking) MutationResult {
	if !candidate.IsValid() {
		return reject(b, ReasonInvalidRange, nil)
	}

	// Конфликт нельзя переопределить, поэтому он проверяется до правил длительности
	if conflict := DetectConflict(Candidate{RoomID: roomID, Interval: candidate}, b.ID, bookings); conflict != nil {
		return reject(b, ReasonConflict, conflict)
	}

	// Запись номера от другого ID считаем отсутствующей
	if room != nil && room.ID != roomID {
		room = nil
	}

	return accept(roomID, candidate, CheckStayRules(room, Nights(candidate)))
}

func dragCandidate(b *domain.Booking, dayDelta int, targetRoomID int64) (Interval, int64) {
	roomID := b.RoomID
	if targetRoomID != 0 {
		roomID = targetRoomID
	}
	return IntervalOf(b).Shift(dayDelta), roomID
}

// resizeCandidate возвращает false, если новая граница не остаётся строго
// по свою сторону от противоположной
func resizeCandidate(b *domain.Booking, direction ResizeDirection, dayDelta int) (Interval, bool) {
	iv := IntervalOf(b)

	switch direction {
	case ResizeStart:
		iv.Start = iv.Start.AddDays(dayDelta)
	case ResizeEnd:
		iv.End = iv.End.AddDays(dayDelta)
	default:
		return IntervalOf(b), false
	}

	if !iv.IsValid() {
		return IntervalOf(b), false
	}
	return iv, true
}

func accept(roomID int64, iv Interval, warnings []StayWarning) MutationResult {
	return MutationResult{
		Accepted: true,
		CheckIn:  iv.Start,
		CheckOut: iv.End,
		RoomID:   roomID,
		Warnings: warnings,
	}
}

func reject(b *domain.Booking, reason RejectReason, conflict *domain.Booking) MutationResult {
	return MutationResult{
		Accepted:           false,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		RoomID:             b.RoomID,
		Reason:             reason,
		ConflictingBooking: conflict,
	}
}
