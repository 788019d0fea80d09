package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/room"
	propertyClient "github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/pkg/ptr"
)

const mutationKind = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	propertyClient PropertyServiceClient
	txManager      TransactionManager
	metrics        MutationMetrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	propertyClient PropertyServiceClient,
	txManager TransactionManager,
	metrics MutationMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		propertyClient: propertyClient,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и запись выполняются в одной сериализуемой транзакции,
// exclusion constraint в БД страхует от гонки между транзакциями.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, property=%d, room=%d, check_in=%s, check_out=%s",
		req.UserID, req.PropertyID, req.RoomID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.ObserveMutation(mutationKind, "invalid")
		return nil, err
	}

	// 2. Проверяем доступ менеджера к объекту
	if err := uc.checkAccess(ctx, req.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	candidate := scheduling.Candidate{
		RoomID:   req.RoomID,
		Interval: scheduling.Interval{Start: req.CheckIn, End: req.CheckOut},
	}

	var result *domain.Booking
	var warnings []scheduling.StayWarning

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем номер
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}
		if room.PropertyID != req.PropertyID {
			return ErrRoomNotFound
		}
		if !room.IsActive {
			return ErrRoomInactive
		}

		// 3.2. Получаем бронирования номера, пересекающиеся с новым периодом (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListByProperty(txCtx, domain.BookingsFilter{
			PropertyID: req.PropertyID,
			RoomIDs:    []int64{req.RoomID},
			Start:      &req.CheckIn,
			End:        &req.CheckOut,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 3.3. Проверяем пересечения
		if conflict := scheduling.DetectConflict(candidate, 0, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: room=%d conflicts with booking id=%d [%s, %s)",
				req.RoomID, conflict.ID, conflict.CheckIn, conflict.CheckOut)
			return fmt.Errorf("%w: booking id=%d", ErrConflict, conflict.ID)
		}

		// 3.4. Правила длительности проживания
		warnings = scheduling.CheckStayRules(room, scheduling.Nights(candidate.Interval))
		if len(warnings) > 0 && !req.Override {
			return fmt.Errorf("%w: %s", ErrStayRuleViolation, describeWarnings(warnings))
		}

		// 3.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			PropertyID:  req.PropertyID,
			RoomID:      req.RoomID,
			CheckIn:     req.CheckIn,
			CheckOut:    req.CheckOut,
			Status:      ptr.Deref(req.Status, domain.StatusConfirmed),
			GuestName:   req.GuestName,
			GuestEmail:  req.GuestEmail,
			GuestPhone:  req.GuestPhone,
			TotalAmount: req.TotalAmount,
			Currency:    currencyOrDefault(req.Currency),
			Notes:       req.Notes,
		})
		if errors.Is(err, bookingRepo.ErrOverlap) {
			return fmt.Errorf("%w: concurrent booking for room=%d", ErrConflict, req.RoomID)
		}
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		result := outcome(err)
		uc.metrics.ObserveMutation(mutationKind, result)
		if result == "error" {
			uc.logger.Error("CreateBooking: %v", err)
		} else {
			uc.logger.Warn("CreateBooking: rejected: %v", err)
		}
		return nil, err
	}

	uc.metrics.ObserveMutation(mutationKind, "accepted")
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{Booking: result, Warnings: warnings}, nil
}

// checkAccess проверяет, что пользователь является менеджером объекта
func (uc *UseCase) checkAccess(ctx context.Context, propertyID, userID int64) error {
	property, err := uc.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: failed to get property: %w", ErrInternal, err)
	}

	if !property.IsManagedBy(userID) {
		uc.logger.Warn("CreateBooking: user=%d is not a manager of property=%d", userID, propertyID)
		return ErrAccessDenied
	}

	return nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return domain.DefaultCurrency
	}
	return currency
}

func describeWarnings(warnings []scheduling.StayWarning) string {
	w := warnings[0]
	return fmt.Sprintf("%s: %d nights, limit %d", w.Kind, w.Nights, w.Limit)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return string(scheduling.ReasonConflict)
	case errors.Is(err, ErrStayRuleViolation):
		return "stay-rule"
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrRoomInactive):
		return "invalid"
	default:
		return "error"
	}
}
