package get_availability

import (
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// Request модель запроса доступности номеров за период [Start, End)
type Request struct {
	UserID     int64
	PropertyID int64
	Start      types.Date
	End        types.Date
}

// Response доступность активных номеров (в порядке ID) и загрузка за период
type Response struct {
	PropertyID     int64
	Start          types.Date
	End            types.Date
	Rooms          []scheduling.RoomAvailability
	AvailableCount int
	Occupancy      int
}
