package cancel_gesture

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgGestureNotFound = "жест не найден или истёк"
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

// Handle DELETE /api/v1/gestures/{gestureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gestureID := mux.Vars(r)["gestureId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.useCase.Cancel(r.Context(), userID, gestureID); err != nil {
		if errors.Is(err, gesture.ErrGestureNotFound) {
			handlers.RespondNotFound(w, msgGestureNotFound)
			return
		}
		h.logger.Error("DELETE /gestures/{id} - Failed: gesture_id=%s, error=%v", gestureID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
