package update_stay

import (
	"fmt"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
)

// maxDayDelta ограничение сдвига за один жест
const maxDayDelta = 3 * domain.MaxStayNightsLimit

func validateMove(req *MoveRequest) error {
	if err := validateCommon(req.UserID, req.BookingID, req.DayDelta); err != nil {
		return err
	}

	if req.TargetRoomID < 0 {
		return fmt.Errorf("%w: targetRoomID must not be negative", ErrInvalidInput)
	}

	return nil
}

func validateResize(req *ResizeRequest) error {
	if err := validateCommon(req.UserID, req.BookingID, req.DayDelta); err != nil {
		return err
	}

	if req.Direction != scheduling.ResizeStart && req.Direction != scheduling.ResizeEnd {
		return fmt.Errorf("%w: direction must be start or end", ErrInvalidInput)
	}

	return nil
}

func validateCommon(userID, bookingID int64, dayDelta int) error {
	if userID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if dayDelta > maxDayDelta || dayDelta < -maxDayDelta {
		return fmt.Errorf("%w: dayDelta must be within ±%d", ErrInvalidInput, maxDayDelta)
	}

	return nil
}
