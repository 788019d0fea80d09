package update_room

import "github.com/m04kA/SMC-StayCalendar/internal/service/rooms/models"

// UpdateRoomRequest HTTP request model, все поля опциональны
type UpdateRoomRequest struct {
	Name          *string `json:"name,omitempty"`
	TotalUnits    *int    `json:"totalUnits,omitempty"`
	MinStayNights *int    `json:"minStayNights,omitempty"`
	MaxStayNights *int    `json:"maxStayNights,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateRoomRequest) ToServiceRequest(userID int64) *models.UpdateRoomRequest {
	return &models.UpdateRoomRequest{
		UserID:        userID,
		Name:          r.Name,
		TotalUnits:    r.TotalUnits,
		MinStayNights: r.MinStayNights,
		MaxStayNights: r.MaxStayNights,
	}
}
