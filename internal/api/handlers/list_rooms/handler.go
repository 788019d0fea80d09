package list_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-StayCalendar/internal/service/rooms"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта размещения"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidParams     = "некорректные параметры запроса"
	msgNotFound          = "объект размещения не найден"
	msgForbidden         = "доступ запрещен"
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

// Handle GET /api/v1/properties/{propertyId}/rooms
// Query params: includeInactive (опционально)
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

	includeInactive := false
	if s := r.URL.Query().Get("includeInactive"); s != "" {
		includeInactive, err = strconv.ParseBool(s)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}

	result, err := h.service.List(r.Context(), propertyID, userID, includeInactive)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrPropertyNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("GET /properties/{id}/rooms - Access denied: property_id=%d, user_id=%d", propertyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /properties/{id}/rooms - Failed to list rooms: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/rooms - Rooms retrieved: property_id=%d, count=%d", propertyID, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result.Rooms)
}
