package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	propertyClient "github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
)

// UseCase сценарий расчёта доступности номеров
type UseCase struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	propertyClient PropertyServiceClient
	maxDays        int
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// maxDays - максимальная длина периода в днях.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	propertyClient PropertyServiceClient,
	maxDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		propertyClient: propertyClient,
		maxDays:        maxDays,
		logger:         logger,
	}
}

// Execute считает доступность номеров за период.
// Пустой период (Start == End) допустим: все номера свободны, загрузка 0.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: user=%d, property=%d, period=%s..%s",
		req.UserID, req.PropertyID, req.Start, req.End)

	// 1. Валидация
	if req.UserID <= 0 || req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: userID and propertyID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	days := req.Start.DaysUntil(req.End)
	if days < 0 {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, req.End, req.Start)
	}
	if days > uc.maxDays {
		return nil, fmt.Errorf("%w: period is longer than %d days", ErrInvalidRange, uc.maxDays)
	}

	// 2. Проверяем доступ
	if err := uc.checkAccess(ctx, req.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Загружаем активные номера
	rooms, err := uc.roomRepo.ListByProperty(ctx, req.PropertyID, false)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list rooms for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to list rooms: %w", ErrInternal, err)
	}

	// 4. Загружаем бронирования периода
	var bookings []*domain.Booking
	if days > 0 {
		start, end := req.Start, req.End
		bookings, err = uc.bookingRepo.ListByProperty(ctx, domain.BookingsFilter{
			PropertyID: req.PropertyID,
			Start:      &start,
			End:        &end,
		})
		if err != nil {
			uc.logger.Error("GetAvailability: failed to list bookings for property=%d: %v", req.PropertyID, err)
			return nil, fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}
	}

	// 5. Считаем доступность
	availability := scheduling.ComputeAvailability(rooms, bookings, req.Start, req.End)
	available := 0
	for _, a := range availability {
		if a.IsAvailable {
			available++
		}
	}

	resp := &Response{
		PropertyID:     req.PropertyID,
		Start:          req.Start,
		End:            req.End,
		Rooms:          availability,
		AvailableCount: available,
		Occupancy:      scheduling.ComputeOccupancy(bookings, rooms, req.Start, req.End),
	}

	uc.logger.Info("GetAvailability: property=%d, %d of %d rooms available, occupancy=%d%%",
		req.PropertyID, available, len(availability), resp.Occupancy)

	return resp, nil
}

// checkAccess проверяет, что пользователь является менеджером объекта
func (uc *UseCase) checkAccess(ctx context.Context, propertyID, userID int64) error {
	property, err := uc.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("GetAvailability: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		uc.logger.Error("GetAvailability: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: failed to get property: %w", ErrInternal, err)
	}

	if !property.IsManagedBy(userID) {
		uc.logger.Warn("GetAvailability: user=%d is not a manager of property=%d", userID, propertyID)
		return ErrAccessDenied
	}

	return nil
}
