package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	getAvailability "github.com/m04kA/SMC-StayCalendar/internal/usecase/get_availability"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта размещения"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidParams     = "некорректные параметры запроса, ожидаются start и end в формате YYYY-MM-DD"
	msgInvalidRange      = "некорректный период"
	msgNotFound          = "объект размещения не найден"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability?start=&end=
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
		h.logger.Warn("GET /properties/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailability.ErrPropertyNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getAvailability.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /properties/{id}/availability - Failed: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
