package models

import (
	"time"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	UserID        int64  `json:"userId"`
	PropertyID    int64  `json:"propertyId"`
	Name          string `json:"name"`
	TotalUnits    int    `json:"totalUnits"`
	MinStayNights int    `json:"minStayNights"` // 0 = без ограничения
	MaxStayNights int    `json:"maxStayNights"` // 0 = без ограничения
}

// UpdateRoomRequest запрос на обновление номера.
// Все поля опциональны - обновляются только переданные значения.
type UpdateRoomRequest struct {
	UserID        int64   `json:"userId"`
	Name          *string `json:"name,omitempty"`
	TotalUnits    *int    `json:"totalUnits,omitempty"`
	MinStayNights *int    `json:"minStayNights,omitempty"`
	MaxStayNights *int    `json:"maxStayNights,omitempty"`
}

// ApplyToRoom применяет переданные поля к номеру
func (r *UpdateRoomRequest) ApplyToRoom(room *domain.Room) {
	if r.Name != nil {
		room.Name = *r.Name
	}
	if r.TotalUnits != nil {
		room.TotalUnits = *r.TotalUnits
	}
	if r.MinStayNights != nil {
		room.MinStayNights = *r.MinStayNights
	}
	if r.MaxStayNights != nil {
		room.MaxStayNights = *r.MaxStayNights
	}
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"propertyId"`
	Name          string    `json:"name"`
	TotalUnits    int       `json:"totalUnits"`
	IsActive      bool      `json:"isActive"`
	MinStayNights int       `json:"minStayNights"`
	MaxStayNights int       `json:"maxStayNights"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:            r.ID,
		PropertyID:    r.PropertyID,
		Name:          r.Name,
		TotalUnits:    r.TotalUnits,
		IsActive:      r.IsActive,
		MinStayNights: r.MinStayNights,
		MaxStayNights: r.MaxStayNights,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		if r := FromDomainRoom(room); r != nil {
			resp.Rooms = append(resp.Rooms, *r)
		}
	}
	return resp
}
