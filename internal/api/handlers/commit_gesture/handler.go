package commit_gesture

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgGestureNotFound    = "жест не найден или истёк"
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

// Handle POST /api/v1/gestures/{gestureId}/commit
// Ответ такой же, как у /bookings/{id}/move и /bookings/{id}/resize.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gestureID := mux.Vars(r)["gestureId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CommitGestureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /gestures/{id}/commit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Commit(r.Context(), req.ToUseCaseRequest(gestureID, userID))
	if err != nil {
		if errors.Is(err, gesture.ErrGestureNotFound) {
			handlers.RespondNotFound(w, msgGestureNotFound)
			return
		}

		status, message, known := handlers.StayError(err)
		if !known {
			h.logger.Error("POST /gestures/{id}/commit - Failed: gesture_id=%s, error=%v", gestureID, err)
		}
		handlers.RespondError(w, status, message)
		return
	}

	h.logger.Info("POST /gestures/{id}/commit - gesture_id=%s, booking_id=%d, accepted=%t, reason=%s",
		gestureID, result.BookingID, result.Accepted, result.Reason)
	handlers.RespondJSON(w, handlers.StayResultStatus(result), handlers.FromStayResponse(result))
}
