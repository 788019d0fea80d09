package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-StayCalendar/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgConflict           = "даты пересекаются с другим бронированием номера"
	msgStayRule           = "нарушены правила минимальной/максимальной длительности, требуется override"
	msgPropertyNotFound   = "объект размещения не найден"
	msgRoomNotFound       = "номер не найден"
	msgRoomInactive       = "номер выключен"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Conflict: property_id=%d, room_id=%d, %s..%s",
				req.PropertyID, req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createBooking.ErrStayRuleViolation):
			h.logger.Warn("POST /bookings - Stay rule violation: %v", err)
			handlers.RespondUnprocessable(w, msgStayRule)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomInactive):
			handlers.RespondUnprocessable(w, msgRoomInactive)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, property_id=%d",
		result.Booking.ID, userID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
