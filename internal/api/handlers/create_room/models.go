package create_room

import "github.com/m04kA/SMC-StayCalendar/internal/service/rooms/models"

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Name          string `json:"name"`
	TotalUnits    int    `json:"totalUnits"`
	MinStayNights int    `json:"minStayNights"`
	MaxStayNights int    `json:"maxStayNights"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateRoomRequest) ToServiceRequest(propertyID, userID int64) *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		UserID:        userID,
		PropertyID:    propertyID,
		Name:          r.Name,
		TotalUnits:    r.TotalUnits,
		MinStayNights: r.MinStayNights,
		MaxStayNights: r.MaxStayNights,
	}
}
