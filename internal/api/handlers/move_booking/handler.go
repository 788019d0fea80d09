package move_booking

import (
	"net/http"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase MoveUseCase
	logger  Logger
}

func NewHandler(useCase MoveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/move
// Отказ (пересечение, некорректный диапазон) возвращается с телом результата:
// клиент возвращает блок на исходное место.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req MoveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Move(r.Context(), req.ToUseCaseRequest(bookingID, userID))
	if err != nil {
		status, message, known := handlers.StayError(err)
		if !known {
			h.logger.Error("POST /bookings/{id}/move - Failed to move booking: booking_id=%d, error=%v", bookingID, err)
		}
		handlers.RespondError(w, status, message)
		return
	}

	h.logger.Info("POST /bookings/{id}/move - booking_id=%d, delta=%d, accepted=%t, reason=%s",
		bookingID, req.DayDelta, result.Accepted, result.Reason)
	handlers.RespondJSON(w, handlers.StayResultStatus(result), handlers.FromStayResponse(result))
}
