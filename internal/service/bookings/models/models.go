package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetPropertyBookingsRequest запрос на получение бронирований объекта
type GetPropertyBookingsRequest struct {
	UserID           int64       `json:"userId"`
	PropertyID       int64       `json:"propertyId"`
	RoomID           *int64      `json:"roomId,omitempty"`
	Start            *types.Date `json:"start,omitempty"` // начало периода включительно
	End              *types.Date `json:"end,omitempty"`   // конец периода исключительно
	Status           *string     `json:"status,omitempty"`
	IncludeCancelled bool        `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPropertyBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		PropertyID:       r.PropertyID,
		Start:            r.Start,
		End:              r.End,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.RoomID != nil {
		filter.RoomIDs = []int64{*r.RoomID}
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64      `json:"id"`
	PropertyID int64      `json:"propertyId"`
	RoomID     int64      `json:"roomId"`
	CheckIn    types.Date `json:"checkIn"`  // "2025-10-15"
	CheckOut   types.Date `json:"checkOut"` // день выезда, номер в этот день свободен
	Nights     int        `json:"nights"`
	Status     string     `json:"status"`

	GuestName   string  `json:"guestName"`
	GuestEmail  *string `json:"guestEmail,omitempty"`
	GuestPhone  *string `json:"guestPhone,omitempty"`
	TotalAmount float64 `json:"totalAmount"`
	Currency    string  `json:"currency"`
	Notes       *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		PropertyID:         b.PropertyID,
		RoomID:             b.RoomID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Nights:             b.Nights(),
		Status:             string(b.Status),
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         b.GuestPhone,
		TotalAmount:        b.TotalAmount,
		Currency:           b.Currency,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
