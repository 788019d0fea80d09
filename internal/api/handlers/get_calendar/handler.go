package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	getCalendar "github.com/m04kA/SMC-StayCalendar/internal/usecase/get_calendar"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта размещения"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidParams     = "некорректные параметры окна календаря"
	msgNotFound          = "объект размещения не найден"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/calendar
// Query params: start (обязательно), view=day|week|month или days, zoom
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

	req, err := ToUseCaseRequest(propertyID, userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getCalendar.ErrPropertyNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getCalendar.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /properties/{id}/calendar - Failed to build calendar: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
