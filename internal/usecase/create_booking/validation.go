package create_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// Выезд строго после заезда
	iv, err := scheduling.NewInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if scheduling.Nights(iv) > domain.MaxStayNightsLimit {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNightsLimit)
	}

	if req.Status != nil && *req.Status != domain.StatusPending && *req.Status != domain.StatusConfirmed {
		return fmt.Errorf("%w: status must be pending or confirmed", ErrInvalidInput)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName must not exceed %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	if req.Currency != "" && len(req.Currency) != domain.CurrencyCodeLength {
		return fmt.Errorf("%w: currency must be a %d-letter code", ErrInvalidInput, domain.CurrencyCodeLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
