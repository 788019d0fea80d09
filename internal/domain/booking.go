package domain

import (
	"time"

	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// BookingStatus represents the status of a stay booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
	StatusCompleted  BookingStatus = "completed"
)

// Booking represents a stay in a room.
// The occupied range is half-open: CheckIn is occupied, CheckOut is not.
type Booking struct {
	ID         int64
	PropertyID int64
	RoomID     int64 // non-owning reference, resolved against the room snapshot
	CheckIn    types.Date
	CheckOut   types.Date
	Status     BookingStatus

	GuestName   string
	GuestEmail  *string
	GuestPhone  *string
	TotalAmount float64
	Currency    string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking no longer occupies its room
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeMoved returns true if the stay dates or room may still be changed
func (b *Booking) CanBeMoved() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// Nights returns the number of nights between check-in and check-out
func (b *Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// BookingsFilter фильтр для получения бронирований объекта размещения
type BookingsFilter struct {
	PropertyID       int64          // Обязательный параметр
	RoomIDs          []int64        // Фильтр по номерам (пусто - все номера)
	Start            *types.Date    // Начало периода включительно (nil - без ограничения)
	End              *types.Date    // Конец периода исключительно (nil - без ограничения)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}

// statusTransitions допустимые переходы статусов (отмена идёт через Cancel)
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed},
	StatusConfirmed:  {StatusCheckedIn},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {StatusCompleted},
}

// CanTransitionTo returns true if the booking may move to the next status.
// Status changes never touch the stay interval.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}
