package scheduling

import (
	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

func day(s string) types.Date {
	return types.MustParseDate(s)
}

func iv(start, end string) Interval {
	return Interval{Start: day(start), End: day(end)}
}

func booking(id, roomID int64, checkIn, checkOut string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		RoomID:    roomID,
		CheckIn:   day(checkIn),
		CheckOut:  day(checkOut),
		Status:    domain.StatusConfirmed,
		GuestName: "Guest",
	}
}

func cancelled(b *domain.Booking) *domain.Booking {
	b.Status = domain.StatusCancelled
	return b
}
