package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	bookingModels "github.com/m04kA/SMC-StayCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// WarningResponse нарушение правила min/max stay
type WarningResponse struct {
	Kind   string `json:"kind"` // "min-stay" | "max-stay"
	RoomID int64  `json:"roomId"`
	Nights int    `json:"nights"`
	Limit  int    `json:"limit"`
}

// StayResultResponse результат drag/resize.
// При отказе checkIn/checkOut/roomId - исходные значения, блок возвращается на место.
type StayResultResponse struct {
	Accepted           bool                           `json:"accepted"`
	Changed            bool                           `json:"changed"`
	BookingID          int64                          `json:"bookingId"`
	RoomID             int64                          `json:"roomId"`
	CheckIn            types.Date                     `json:"checkIn"`
	CheckOut           types.Date                     `json:"checkOut"`
	Reason             string                         `json:"reason,omitempty"` // "conflict" | "invalid-range" | "stale"
	ConflictingBooking *bookingModels.BookingResponse `json:"conflictingBooking,omitempty"`
	Warnings           []WarningResponse              `json:"warnings"`
}

// FromWarnings конвертирует предупреждения в HTTP модель
func FromWarnings(warnings []scheduling.StayWarning) []WarningResponse {
	resp := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		resp = append(resp, WarningResponse{Kind: string(w.Kind), RoomID: w.RoomID, Nights: w.Nights, Limit: w.Limit})
	}
	return resp
}

// FromStayResponse конвертирует ответ update_stay в HTTP модель
func FromStayResponse(resp *update_stay.Response) *StayResultResponse {
	return &StayResultResponse{
		Accepted:           resp.Accepted,
		Changed:            resp.Changed,
		BookingID:          resp.BookingID,
		RoomID:             resp.RoomID,
		CheckIn:            resp.CheckIn,
		CheckOut:           resp.CheckOut,
		Reason:             string(resp.Reason),
		ConflictingBooking: bookingModels.FromDomainBooking(resp.ConflictingBooking),
		Warnings:           FromWarnings(resp.Warnings),
	}
}

// StayResultStatus HTTP статус для результата drag/resize:
// 200 - принято, 409 - пересечение или устаревший жест, 400 - некорректный диапазон
func StayResultStatus(resp *update_stay.Response) int {
	switch {
	case resp.Accepted:
		return http.StatusOK
	case resp.Reason == scheduling.ReasonConflict, resp.Reason == scheduling.ReasonStale:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Сообщения об ошибках update_stay
const (
	msgBookingNotFound   = "бронирование не найдено"
	msgBookingNotMovable = "даты бронирования в текущем статусе изменить нельзя"
	msgPropertyNotFound  = "объект размещения не найден"
	msgForbidden         = "доступ запрещен"
	msgRoomNotFound      = "номер не найден"
	msgRoomInactive      = "номер выключен"
	msgStayRule          = "нарушены правила минимальной/максимальной длительности, требуется override"
	msgInvalidInput      = "некорректные параметры запроса"
)

// StayError HTTP статус и сообщение для ошибки update_stay.
// ok == false - ошибка внутренняя.
func StayError(err error) (status int, message string, ok bool) {
	switch {
	case errors.Is(err, update_stay.ErrBookingNotFound):
		return http.StatusNotFound, msgBookingNotFound, true
	case errors.Is(err, update_stay.ErrPropertyNotFound):
		return http.StatusNotFound, msgPropertyNotFound, true
	case errors.Is(err, update_stay.ErrRoomNotFound):
		return http.StatusNotFound, msgRoomNotFound, true
	case errors.Is(err, update_stay.ErrAccessDenied):
		return http.StatusForbidden, msgForbidden, true
	case errors.Is(err, update_stay.ErrBookingNotMovable):
		return http.StatusConflict, msgBookingNotMovable, true
	case errors.Is(err, update_stay.ErrRoomInactive):
		return http.StatusUnprocessableEntity, msgRoomInactive, true
	case errors.Is(err, update_stay.ErrStayRuleViolation):
		return http.StatusUnprocessableEntity, msgStayRule, true
	case errors.Is(err, update_stay.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidInput, true
	default:
		return http.StatusInternalServerError, msgInternalError, false
	}
}
