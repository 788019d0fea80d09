package move_booking

import "github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"

// MoveBookingRequest HTTP request model
type MoveBookingRequest struct {
	DayDelta     int   `json:"dayDelta"`
	TargetRoomID int64 `json:"targetRoomId,omitempty"` // 0 - тот же номер
	Override     bool  `json:"override,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveBookingRequest) ToUseCaseRequest(bookingID, userID int64) *update_stay.MoveRequest {
	return &update_stay.MoveRequest{
		UserID:       userID,
		BookingID:    bookingID,
		DayDelta:     r.DayDelta,
		TargetRoomID: r.TargetRoomID,
		Override:     r.Override,
	}
}
