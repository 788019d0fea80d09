package update_stay

import (
	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// Snapshot положение бронирования, от которого клиент отсчитывал сдвиг
type Snapshot struct {
	RoomID   int64
	CheckIn  types.Date
	CheckOut types.Date
}

// SnapshotOf снимок текущего положения бронирования
func SnapshotOf(b *domain.Booking) *Snapshot {
	return &Snapshot{RoomID: b.RoomID, CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// Matches проверяет, что бронирование стоит там же, где в снимке
func (s *Snapshot) Matches(b *domain.Booking) bool {
	return s.RoomID == b.RoomID && s.CheckIn.Equal(b.CheckIn) && s.CheckOut.Equal(b.CheckOut)
}

// MoveRequest перенос бронирования (drag) на DayDelta дней и, опционально, в другой номер
type MoveRequest struct {
	UserID       int64
	BookingID    int64
	DayDelta     int
	TargetRoomID int64     // 0 - тот же номер
	Override     bool      // разрешить нарушение правил min/max stay
	Expected     *Snapshot // nil - сдвиг от текущего положения в БД
}

// ResizeRequest сдвиг одной границы бронирования
type ResizeRequest struct {
	UserID    int64
	BookingID int64
	Direction scheduling.ResizeDirection
	DayDelta  int
	Override  bool
	Expected  *Snapshot
}

// Response результат изменения.
// Accepted = false - изменение отклонено, CheckIn/CheckOut/RoomID исходные,
// UI возвращает блок на место.
type Response struct {
	Accepted           bool
	BookingID          int64
	RoomID             int64
	CheckIn            types.Date
	CheckOut           types.Date
	Reason             scheduling.RejectReason
	ConflictingBooking *domain.Booking
	Warnings           []scheduling.StayWarning
	Changed            bool // false для no-op (сдвиг 0)
}
