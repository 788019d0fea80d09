package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-StayCalendar/internal/service/rooms"
)

const (
	msgInvalidPropertyID  = "некорректный ID объекта размещения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры номера"
	msgAlreadyExists      = "номер с таким названием уже существует"
	msgNotFound           = "объект размещения не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/properties/{propertyId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := handlers.PathID(r, "propertyId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties/{id}/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), req.ToServiceRequest(propertyID, userID))
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /properties/{id}/rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rooms.ErrRoomAlreadyExists):
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, rooms.ErrPropertyNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /properties/{id}/rooms - Access denied: property_id=%d, user_id=%d", propertyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /properties/{id}/rooms - Failed to create room: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /properties/{id}/rooms - Room created: room_id=%d, property_id=%d", room.ID, propertyID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
