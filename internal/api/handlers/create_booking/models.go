package create_booking

import (
	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	bookingModels "github.com/m04kA/SMC-StayCalendar/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-StayCalendar/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID  int64      `json:"propertyId"`
	RoomID      int64      `json:"roomId"`
	CheckIn     types.Date `json:"checkIn"`  // "2025-10-15"
	CheckOut    types.Date `json:"checkOut"` // день выезда
	Status      *string    `json:"status,omitempty"`
	GuestName   string     `json:"guestName"`
	GuestEmail  *string    `json:"guestEmail,omitempty"`
	GuestPhone  *string    `json:"guestPhone,omitempty"`
	TotalAmount float64    `json:"totalAmount"`
	Currency    string     `json:"currency,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Override    bool       `json:"override,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	bookingModels.BookingResponse
	Warnings []handlers.WarningResponse `json:"warnings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	req := &createBooking.Request{
		UserID:      userID,
		PropertyID:  r.PropertyID,
		RoomID:      r.RoomID,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		GuestName:   r.GuestName,
		GuestEmail:  r.GuestEmail,
		GuestPhone:  r.GuestPhone,
		TotalAmount: r.TotalAmount,
		Currency:    r.Currency,
		Notes:       r.Notes,
		Override:    r.Override,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.Status = &status
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingResponse: *bookingModels.FromDomainBooking(resp.Booking),
		Warnings:        handlers.FromWarnings(resp.Warnings),
	}
}
