package scheduling

import "github.com/m04kA/SMC-StayCalendar/internal/domain"

// Candidate интервал, который предполагается занять в номере
type Candidate struct {
	RoomID   int64
	Interval Interval
}

// DetectConflict возвращает первое (в порядке списка) бронирование, которое
// пересекается с candidate в том же номере, или nil.
//
// Отменённые бронирования и бронирование с ID excludeID (редактируемое) не учитываются.
// excludeID = 0 означает "не исключать ничего".
// Если в данных уже есть несколько пересечений (ошибка целостности где-то выше),
// функция всё равно детерминированно вернёт первое из них.
func DetectConflict(candidate Candidate, excludeID int64, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if conflicts(candidate, excludeID, b) {
			return b
		}
	}
	return nil
}

// CountConflicts возвращает количество бронирований, пересекающихся с candidate
func CountConflicts(candidate Candidate, excludeID int64, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if conflicts(candidate, excludeID, b) {
			count++
		}
	}
	return count
}

func conflicts(candidate Candidate, excludeID int64, b *domain.Booking) bool {
	if b == nil || b.RoomID != candidate.RoomID || b.IsCancelled() {
		return false
	}
	if excludeID != 0 && b.ID == excludeID {
		return false
	}
	return Overlaps(candidate.Interval, IntervalOf(b))
}
