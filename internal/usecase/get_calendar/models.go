package get_calendar

import (
	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// View предустановленная ширина окна
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Settings параметры отрисовки календаря
type Settings struct {
	PixelsPerDay []float64 // уровни масштаба
	DefaultZoom  int
	MaxDays      int
}

// Request модель запроса календаря.
// Days > 0 имеет приоритет над View, без обоих окно - неделя.
type Request struct {
	UserID     int64
	PropertyID int64
	Start      types.Date
	View       View
	Days       int
	Zoom       *int // индекс уровня масштаба, nil - по умолчанию
}

// Response сетка календаря: строка на номер, блоки бронирований с координатами
type Response struct {
	PropertyID   int64
	Start        types.Date
	End          types.Date // первый день после окна
	Days         int
	PixelsPerDay float64
	Rows         []Row
	Occupancy    int // загрузка активных номеров за окно, %
}

// Row строка календаря
type Row struct {
	Room   *domain.Room
	Blocks []Block
}

// Block видимое бронирование
type Block struct {
	Booking  *domain.Booking
	Position scheduling.Position
}
