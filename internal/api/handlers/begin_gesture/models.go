package begin_gesture

import (
	"time"

	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	bookingModels "github.com/m04kA/SMC-StayCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"
)

// BeginGestureRequest HTTP request model
type BeginGestureRequest struct {
	BookingID int64  `json:"bookingId"`
	Kind      string `json:"kind"` // "drag" | "resize-start" | "resize-end"
}

// BeginGestureResponse HTTP response model
type BeginGestureResponse struct {
	GestureID string                        `json:"gestureId"`
	Kind      string                        `json:"kind"`
	Booking   bookingModels.BookingResponse `json:"booking"`
	ExpiresAt time.Time                     `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BeginGestureRequest) ToUseCaseRequest(userID int64) *gesture.BeginRequest {
	return &gesture.BeginRequest{
		UserID:    userID,
		BookingID: r.BookingID,
		Kind:      scheduling.GestureKind(r.Kind),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *gesture.BeginResponse) *BeginGestureResponse {
	return &BeginGestureResponse{
		GestureID: resp.GestureID,
		Kind:      string(resp.Kind),
		Booking:   *bookingModels.FromDomainBooking(&resp.Booking),
		ExpiresAt: resp.ExpiresAt,
	}
}
