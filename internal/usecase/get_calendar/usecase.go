package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	propertyClient "github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
)

// UseCase сценарий получения сетки календаря объекта размещения
type UseCase struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	propertyClient PropertyServiceClient
	settings       Settings
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	propertyClient PropertyServiceClient,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		propertyClient: propertyClient,
		settings:       settings,
		logger:         logger,
	}
}

// Execute строит календарь.
// В строки попадают все активные номера и неактивные номера, у которых есть
// бронирования в окне. Блоки в строке отсортированы по дате заезда.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: user=%d, property=%d, start=%s, view=%s, days=%d",
		req.UserID, req.PropertyID, req.Start, req.View, req.Days)

	// 1. Рассчитываем окно
	window, err := buildWindow(req, uc.settings)
	if err != nil {
		uc.logger.Warn("GetCalendar: invalid request: %v", err)
		return nil, err
	}

	// 2. Проверяем доступ
	if err := uc.checkAccess(ctx, req.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Загружаем номера (вместе с неактивными - у них могут остаться брони)
	rooms, err := uc.roomRepo.ListByProperty(ctx, req.PropertyID, true)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list rooms for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to list rooms: %w", ErrInternal, err)
	}

	// 4. Загружаем бронирования окна
	start, end := window.Start, window.End()
	bookings, err := uc.bookingRepo.ListByProperty(ctx, domain.BookingsFilter{
		PropertyID: req.PropertyID,
		Start:      &start,
		End:        &end,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list bookings for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
	}

	// 5. Раскладываем видимые бронирования по строкам
	visible := scheduling.FilterVisible(bookings, window)
	blocks := make(map[int64][]Block, len(rooms))
	for _, b := range visible {
		if domain.FindRoom(rooms, b.RoomID) == nil {
			uc.logger.Warn("GetCalendar: booking id=%d references unknown room=%d, skipped", b.ID, b.RoomID)
			continue
		}
		blocks[b.RoomID] = append(blocks[b.RoomID], Block{
			Booking:  b,
			Position: scheduling.MapToCoordinates(scheduling.IntervalOf(b), window),
		})
	}

	rows := make([]Row, 0, len(rooms))
	active := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.IsActive {
			active = append(active, room)
		} else if len(blocks[room.ID]) == 0 {
			continue
		}
		rows = append(rows, Row{Room: room, Blocks: blocks[room.ID]})
	}

	resp := &Response{
		PropertyID:   req.PropertyID,
		Start:        start,
		End:          end,
		Days:         window.Days,
		PixelsPerDay: window.PixelsPerDay,
		Rows:         rows,
		Occupancy:    scheduling.ComputeOccupancy(bookings, active, start, end),
	}

	uc.logger.Info("GetCalendar: property=%d, rows=%d, visible bookings=%d, occupancy=%d%%",
		req.PropertyID, len(rows), len(visible), resp.Occupancy)

	return resp, nil
}

// checkAccess проверяет, что пользователь является менеджером объекта
func (uc *UseCase) checkAccess(ctx context.Context, propertyID, userID int64) error {
	property, err := uc.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("GetCalendar: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		uc.logger.Error("GetCalendar: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: failed to get property: %w", ErrInternal, err)
	}

	if !property.IsManagedBy(userID) {
		uc.logger.Warn("GetCalendar: user=%d is not a manager of property=%d", userID, propertyID)
		return ErrAccessDenied
	}

	return nil
}
