package resize_booking

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
	useCase ResizeUseCase
	logger  Logger
}

func NewHandler(useCase ResizeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/resize
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

	var req ResizeBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/resize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Resize(r.Context(), req.ToUseCaseRequest(bookingID, userID))
	if err != nil {
		status, message, known := handlers.StayError(err)
		if !known {
			h.logger.Error("POST /bookings/{id}/resize - Failed to resize booking: booking_id=%d, error=%v", bookingID, err)
		}
		handlers.RespondError(w, status, message)
		return
	}

	h.logger.Info("POST /bookings/{id}/resize - booking_id=%d, direction=%s, delta=%d, accepted=%t",
		bookingID, req.Direction, req.DayDelta, result.Accepted)
	handlers.RespondJSON(w, handlers.StayResultStatus(result), handlers.FromStayResponse(result))
}
