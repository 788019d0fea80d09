package get_calendar

import (
	"fmt"
	"net/url"
	"strconv"

	bookingModels "github.com/m04kA/SMC-StayCalendar/internal/service/bookings/models"
	roomModels "github.com/m04kA/SMC-StayCalendar/internal/service/rooms/models"
	getCalendar "github.com/m04kA/SMC-StayCalendar/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	PropertyID   int64         `json:"propertyId"`
	Start        types.Date    `json:"start"`
	End          types.Date    `json:"end"` // первый день после окна
	Days         int           `json:"days"`
	PixelsPerDay float64       `json:"pixelsPerDay"`
	Occupancy    int           `json:"occupancy"`
	Rows         []RowResponse `json:"rows"`
}

// RowResponse строка календаря
type RowResponse struct {
	Room   roomModels.RoomResponse `json:"room"`
	Blocks []BlockResponse         `json:"blocks"`
}

// BlockResponse блок бронирования с координатами
type BlockResponse struct {
	Booking        bookingModels.BookingResponse `json:"booking"`
	Offset         float64                       `json:"offset"`
	Width          float64                       `json:"width"`
	StartDayIndex  int                           `json:"startDayIndex"`
	EndDayIndex    int                           `json:"endDayIndex"`
	ClippedAtStart bool                          `json:"clippedAtStart"`
	ClippedAtEnd   bool                          `json:"clippedAtEnd"`
}

// ToUseCaseRequest формирует запрос из query параметров start, view, days, zoom
func ToUseCaseRequest(propertyID, userID int64, query url.Values) (*getCalendar.Request, error) {
	start, err := types.ParseDate(query.Get("start"))
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}

	req := &getCalendar.Request{
		UserID:     userID,
		PropertyID: propertyID,
		Start:      start,
		View:       getCalendar.View(query.Get("view")),
	}

	if s := query.Get("days"); s != "" {
		req.Days, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid days: %w", err)
		}
	}

	if s := query.Get("zoom"); s != "" {
		zoom, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid zoom: %w", err)
		}
		req.Zoom = &zoom
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	rows := make([]RowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		blocks := make([]BlockResponse, 0, len(row.Blocks))
		for _, b := range row.Blocks {
			blocks = append(blocks, BlockResponse{
				Booking:        *bookingModels.FromDomainBooking(b.Booking),
				Offset:         b.Position.Offset,
				Width:          b.Position.Width,
				StartDayIndex:  b.Position.StartDayIndex,
				EndDayIndex:    b.Position.EndDayIndex,
				ClippedAtStart: b.Position.ClippedAtStart,
				ClippedAtEnd:   b.Position.ClippedAtEnd,
			})
		}
		rows = append(rows, RowResponse{Room: *roomModels.FromDomainRoom(row.Room), Blocks: blocks})
	}

	return &CalendarResponse{
		PropertyID:   resp.PropertyID,
		Start:        resp.Start,
		End:          resp.End,
		Days:         resp.Days,
		PixelsPerDay: resp.PixelsPerDay,
		Occupancy:    resp.Occupancy,
		Rows:         rows,
	}
}
