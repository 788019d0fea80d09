package get_availability

import (
	"fmt"
	"net/url"

	getAvailability "github.com/m04kA/SMC-StayCalendar/internal/usecase/get_availability"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PropertyID     int64                      `json:"propertyId"`
	Start          types.Date                 `json:"start"`
	End            types.Date                 `json:"end"`
	AvailableCount int                        `json:"availableCount"`
	Occupancy      int                        `json:"occupancy"`
	Rooms          []RoomAvailabilityResponse `json:"rooms"`
}

// RoomAvailabilityResponse доступность одного номера
type RoomAvailabilityResponse struct {
	RoomID                  int64  `json:"roomId"`
	RoomName                string `json:"roomName"`
	IsAvailable             bool   `json:"isAvailable"`
	ConflictingBookingCount int    `json:"conflictingBookingCount"`
}

// ToUseCaseRequest формирует запрос из query параметров start и end (YYYY-MM-DD)
func ToUseCaseRequest(propertyID, userID int64, query url.Values) (*getAvailability.Request, error) {
	start, err := types.ParseDate(query.Get("start"))
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}
	end, err := types.ParseDate(query.Get("end"))
	if err != nil {
		return nil, fmt.Errorf("invalid end: %w", err)
	}

	return &getAvailability.Request{
		UserID:     userID,
		PropertyID: propertyID,
		Start:      start,
		End:        end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	rooms := make([]RoomAvailabilityResponse, 0, len(resp.Rooms))
	for _, a := range resp.Rooms {
		rooms = append(rooms, RoomAvailabilityResponse{
			RoomID:                  a.Room.ID,
			RoomName:                a.Room.Name,
			IsAvailable:             a.IsAvailable,
			ConflictingBookingCount: a.ConflictingBookingCount,
		})
	}

	return &AvailabilityResponse{
		PropertyID:     resp.PropertyID,
		Start:          resp.Start,
		End:            resp.End,
		AvailableCount: resp.AvailableCount,
		Occupancy:      resp.Occupancy,
		Rooms:          rooms,
	}
}
