package preview_gesture

import (
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// PreviewGestureRequest HTTP request model: текущий сдвиг и окно, в котором рисуется блок
type PreviewGestureRequest struct {
	DayDelta     int        `json:"dayDelta"`
	TargetRoomID int64      `json:"targetRoomId,omitempty"`
	WindowStart  types.Date `json:"windowStart"`
	Days         int        `json:"days"`
	Zoom         *int       `json:"zoom,omitempty"`
}

// PreviewGestureResponse HTTP response model
type PreviewGestureResponse struct {
	RoomID         int64      `json:"roomId"`
	CheckIn        types.Date `json:"checkIn"`
	CheckOut       types.Date `json:"checkOut"`
	PixelsPerDay   float64    `json:"pixelsPerDay"`
	Offset         float64    `json:"offset"`
	Width          float64    `json:"width"`
	Nights         int        `json:"nights"`
	ClippedAtStart bool       `json:"clippedAtStart"`
	ClippedAtEnd   bool       `json:"clippedAtEnd"`
	Visible        bool       `json:"visible"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewGestureRequest) ToUseCaseRequest(gestureID string, userID int64) *gesture.PreviewRequest {
	return &gesture.PreviewRequest{
		UserID:       userID,
		GestureID:    gestureID,
		DayDelta:     r.DayDelta,
		TargetRoomID: r.TargetRoomID,
		WindowStart:  r.WindowStart,
		Days:         r.Days,
		Zoom:         r.Zoom,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *gesture.PreviewResponse) *PreviewGestureResponse {
	return &PreviewGestureResponse{
		RoomID:         resp.RoomID,
		CheckIn:        resp.CheckIn,
		CheckOut:       resp.CheckOut,
		PixelsPerDay:   resp.PixelsPerDay,
		Offset:         resp.Position.Offset,
		Width:          resp.Position.Width,
		Nights:         resp.Position.Nights,
		ClippedAtStart: resp.Position.ClippedAtStart,
		ClippedAtEnd:   resp.Position.ClippedAtEnd,
		Visible:        resp.Position.Visible,
	}
}
