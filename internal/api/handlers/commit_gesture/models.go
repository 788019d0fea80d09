package commit_gesture

import "github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"

// CommitGestureRequest HTTP request model
type CommitGestureRequest struct {
	DayDelta     int   `json:"dayDelta"`
	TargetRoomID int64 `json:"targetRoomId,omitempty"`
	Override     bool  `json:"override,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CommitGestureRequest) ToUseCaseRequest(gestureID string, userID int64) *gesture.CommitRequest {
	return &gesture.CommitRequest{
		UserID:       userID,
		GestureID:    gestureID,
		DayDelta:     r.DayDelta,
		TargetRoomID: r.TargetRoomID,
		Override:     r.Override,
	}
}
