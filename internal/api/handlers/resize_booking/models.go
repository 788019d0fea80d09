package resize_booking

import (
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
)

// ResizeBookingRequest HTTP request model
type ResizeBookingRequest struct {
	Direction string `json:"direction"` // "start" - двигается заезд, "end" - выезд
	DayDelta  int    `json:"dayDelta"`
	Override  bool   `json:"override,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ResizeBookingRequest) ToUseCaseRequest(bookingID, userID int64) *update_stay.ResizeRequest {
	return &update_stay.ResizeRequest{
		UserID:    userID,
		BookingID: bookingID,
		Direction: scheduling.ResizeDirection(r.Direction),
		DayDelta:  r.DayDelta,
		Override:  r.Override,
	}
}
