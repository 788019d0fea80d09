package deactivate_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-StayCalendar/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "номер не найден"
	msgForbidden     = "доступ запрещен"
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

// Handle PATCH /api/v1/rooms/{roomId}/deactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Deactivate(r.Context(), roomID, userID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound), errors.Is(err, rooms.ErrPropertyNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("PATCH /rooms/{id}/deactivate - Access denied: room_id=%d, user_id=%d", roomID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /rooms/{id}/deactivate - Failed to deactivate room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/deactivate - Room deactivated: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
