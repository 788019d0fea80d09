package update_stay

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/room"
	propertyClient "github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
)

// UseCase use case сохранения drag/resize.
// Финальная проверка всегда выполняется здесь, на свежем снимке из БД,
// независимо от того, что показывал клиент во время жеста.
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

// mutation параметры одного изменения
type mutation struct {
	userID       int64
	bookingID    int64
	kind         scheduling.GestureKind
	dayDelta     int
	targetRoomID int64
	override     bool
	expected     *Snapshot
}

// Move переносит бронирование (drag)
func (uc *UseCase) Move(ctx context.Context, req *MoveRequest) (*Response, error) {
	uc.logger.Info("MoveBooking: user=%d, booking=%d, delta=%d, target_room=%d",
		req.UserID, req.BookingID, req.DayDelta, req.TargetRoomID)

	if err := validateMove(req); err != nil {
		uc.logger.Warn("MoveBooking: validation failed: %v", err)
		uc.metrics.ObserveMutation(string(scheduling.GestureDrag), "invalid")
		return nil, err
	}

	return uc.apply(ctx, mutation{
		userID:       req.UserID,
		bookingID:    req.BookingID,
		kind:         scheduling.GestureDrag,
		dayDelta:     req.DayDelta,
		targetRoomID: req.TargetRoomID,
		override:     req.Override,
		expected:     req.Expected,
	})
}

// Resize сдвигает заезд или выезд бронирования
func (uc *UseCase) Resize(ctx context.Context, req *ResizeRequest) (*Response, error) {
	uc.logger.Info("ResizeBooking: user=%d, booking=%d, direction=%s, delta=%d",
		req.UserID, req.BookingID, req.Direction, req.DayDelta)

	kind := scheduling.GestureResizeEnd
	if req.Direction == scheduling.ResizeStart {
		kind = scheduling.GestureResizeStart
	}

	if err := validateResize(req); err != nil {
		uc.logger.Warn("ResizeBooking: validation failed: %v", err)
		uc.metrics.ObserveMutation(string(kind), "invalid")
		return nil, err
	}

	return uc.apply(ctx, mutation{
		userID:    req.UserID,
		bookingID: req.BookingID,
		kind:      kind,
		dayDelta:  req.DayDelta,
		override:  req.Override,
		expected:  req.Expected,
	})
}

func (uc *UseCase) apply(ctx context.Context, m mutation) (*Response, error) {
	// 1. Получаем бронирование и проверяем доступ до открытия транзакции
	current, err := uc.bookingRepo.GetByID(ctx, m.bookingID)
	if err != nil {
		return nil, uc.fail(m, uc.mapBookingErr(err))
	}

	if err := uc.checkAccess(ctx, current.PropertyID, m.userID); err != nil {
		return nil, uc.fail(m, err)
	}

	var resp *Response

	// 2. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Перечитываем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, m.bookingID)
		if err != nil {
			return uc.mapBookingErr(err)
		}

		if !booking.CanBeMoved() {
			return fmt.Errorf("%w: status=%s", ErrBookingNotMovable, booking.Status)
		}

		// Бронирование передвинули после начала жеста: сдвиг от старого положения не применяем,
		// возвращаем текущее положение
		if m.expected != nil && !m.expected.Matches(booking) {
			resp = toResponse(booking, scheduling.MutationResult{
				CheckIn:  booking.CheckIn,
				CheckOut: booking.CheckOut,
				RoomID:   booking.RoomID,
				Reason:   scheduling.ReasonStale,
			})
			return nil
		}

		gesture, err := scheduling.BeginGesture(booking, m.kind)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		// 2.2. Целевой интервал и номер
		target, targetRoomID := gesture.Target(m.dayDelta, m.targetRoomID)

		room, err := uc.roomRepo.GetByID(txCtx, targetRoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}
		if room.PropertyID != booking.PropertyID {
			return ErrRoomNotFound
		}
		if targetRoomID != booking.RoomID && !room.IsActive {
			return ErrRoomInactive
		}

		// 2.3. Снимок бронирований целевого номера на целевой период (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListByProperty(txCtx, domain.BookingsFilter{
			PropertyID: booking.PropertyID,
			RoomIDs:    []int64{targetRoomID},
			Start:      &target.Start,
			End:        &target.End,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 2.4. Проверка конфликтов и правил
		result := gesture.Commit(m.dayDelta, m.targetRoomID, bookings, room)
		if !result.Accepted {
			resp = toResponse(booking, result)
			return nil
		}

		if result.HasWarnings() && !m.override {
			w := result.Warnings[0]
			return fmt.Errorf("%w: %s: %d nights, limit %d", ErrStayRuleViolation, w.Kind, w.Nights, w.Limit)
		}

		// 2.5. Сохраняем, только если что-то изменилось
		if result.Changed(booking) {
			err := uc.bookingRepo.UpdateInterval(txCtx, booking.ID, result.RoomID, result.CheckIn, result.CheckOut)
			if errors.Is(err, bookingRepo.ErrOverlap) {
				// Пересечение, которого не было в снимке (параллельная запись)
				resp = toResponse(booking, scheduling.MutationResult{
					CheckIn:  booking.CheckIn,
					CheckOut: booking.CheckOut,
					RoomID:   booking.RoomID,
					Reason:   scheduling.ReasonConflict,
				})
				return nil
			}
			if err != nil {
				return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
			}
		}

		resp = toResponse(booking, result)
		return nil
	})

	if err != nil {
		return nil, uc.fail(m, err)
	}

	uc.metrics.ObserveMutation(string(m.kind), responseOutcome(resp))
	if resp.Accepted {
		uc.logger.Info("UpdateStay: booking id=%d -> room=%d [%s, %s), changed=%t",
			resp.BookingID, resp.RoomID, resp.CheckIn, resp.CheckOut, resp.Changed)
	} else {
		uc.logger.Warn("UpdateStay: booking id=%d %s rejected: %s", resp.BookingID, m.kind, resp.Reason)
	}

	return resp, nil
}

// checkAccess проверяет, что пользователь является менеджером объекта
func (uc *UseCase) checkAccess(ctx context.Context, propertyID, userID int64) error {
	property, err := uc.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("%w: failed to get property: %w", ErrInternal, err)
	}

	if !property.IsManagedBy(userID) {
		return ErrAccessDenied
	}

	return nil
}

func (uc *UseCase) mapBookingErr(err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return ErrBookingNotFound
	}
	return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
}

// fail логирует ошибку и учитывает её в метриках
func (uc *UseCase) fail(m mutation, err error) error {
	switch {
	case errors.Is(err, ErrStayRuleViolation):
		uc.metrics.ObserveMutation(string(m.kind), "stay-rule")
		uc.logger.Warn("UpdateStay: booking id=%d: %v", m.bookingID, err)
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrBookingNotMovable),
		errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrRoomInactive),
		errors.Is(err, ErrAccessDenied), errors.Is(err, ErrPropertyNotFound),
		errors.Is(err, ErrInvalidInput):
		uc.metrics.ObserveMutation(string(m.kind), "invalid")
		uc.logger.Warn("UpdateStay: booking id=%d: %v", m.bookingID, err)
	default:
		uc.metrics.ObserveMutation(string(m.kind), "error")
		uc.logger.Error("UpdateStay: booking id=%d: %v", m.bookingID, err)
	}
	return err
}

func toResponse(b *domain.Booking, result scheduling.MutationResult) *Response {
	return &Response{
		Accepted:           result.Accepted,
		BookingID:          b.ID,
		RoomID:             result.RoomID,
		CheckIn:            result.CheckIn,
		CheckOut:           result.CheckOut,
		Reason:             result.Reason,
		ConflictingBooking: result.ConflictingBooking,
		Warnings:           result.Warnings,
		Changed:            result.Changed(b),
	}
}

func responseOutcome(resp *Response) string {
	switch {
	case !resp.Accepted:
		return string(resp.Reason)
	case !resp.Changed:
		return "noop"
	default:
		return "accepted"
	}
}
