package begin_gesture

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректный тип жеста или ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgNotMovable         = "даты бронирования в текущем статусе изменить нельзя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase GestureUseCase
	logger  Logger
}

func NewHandler(useCase GestureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/gestures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BeginGestureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /gestures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Begin(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, gesture.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, gesture.ErrBookingNotFound), errors.Is(err, gesture.ErrPropertyNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, gesture.ErrBookingNotMovable):
			handlers.RespondConflict(w, msgNotMovable)

		case errors.Is(err, gesture.ErrAccessDenied):
			h.logger.Warn("POST /gestures - Access denied: booking_id=%d, user_id=%d", req.BookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /gestures - Failed to begin gesture: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
