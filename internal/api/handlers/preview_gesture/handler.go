package preview_gesture

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
	msgInvalidInput       = "некорректные параметры окна календаря"
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

// Handle POST /api/v1/gestures/{gestureId}/preview
// Вызывается на каждое движение указателя, поэтому без info-логов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gestureID := mux.Vars(r)["gestureId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req PreviewGestureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Preview(r.Context(), req.ToUseCaseRequest(gestureID, userID))
	if err != nil {
		switch {
		case errors.Is(err, gesture.ErrGestureNotFound):
			handlers.RespondNotFound(w, msgGestureNotFound)

		case errors.Is(err, gesture.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /gestures/{id}/preview - Failed: gesture_id=%s, error=%v", gestureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
