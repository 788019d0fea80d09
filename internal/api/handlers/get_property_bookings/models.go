package get_property_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-StayCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Поддерживаются roomId, start, end (YYYY-MM-DD), status, includeCancelled.
func ToServiceRequest(propertyID, userID int64, query url.Values) (*models.GetPropertyBookingsRequest, error) {
	req := &models.GetPropertyBookingsRequest{
		UserID:     userID,
		PropertyID: propertyID,
	}

	if s := query.Get("roomId"); s != "" {
		roomID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid roomId: %w", err)
		}
		req.RoomID = &roomID
	}

	if s := query.Get("start"); s != "" {
		start, err := types.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("invalid start: %w", err)
		}
		req.Start = &start
	}

	if s := query.Get("end"); s != "" {
		end, err := types.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("invalid end: %w", err)
		}
		req.End = &end
	}

	if s := query.Get("status"); s != "" {
		req.Status = &s
	}

	if s := query.Get("includeCancelled"); s != "" {
		include, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled: %w", err)
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
