package create_booking

import (
	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64                 // ID менеджера (из X-User-ID)
	PropertyID  int64                 // ID объекта размещения
	RoomID      int64                 // ID номера
	CheckIn     types.Date            // День заезда (занят)
	CheckOut    types.Date            // День выезда (не занят)
	Status      *domain.BookingStatus // pending или confirmed (по умолчанию confirmed)
	GuestName   string
	GuestEmail  *string
	GuestPhone  *string
	TotalAmount float64
	Currency    string // ISO 4217, по умолчанию EUR
	Notes       *string
	Override    bool // разрешить нарушение правил min/max stay
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking  *domain.Booking
	Warnings []scheduling.StayWarning // нарушения правил, принятые через override
}
