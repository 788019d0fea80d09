package bookings

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/booking"
	propertyClient "github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями.
// Даты и номер бронирования здесь не меняются: для этого есть update_stay.
type Service struct {
	bookingRepo    BookingRepository
	propertyClient PropertyServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	propertyClient PropertyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		propertyClient: propertyClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID.
// Доступно только менеджерам объекта, которому принадлежит бронирование.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkManagerAccess(ctx, booking.PropertyID, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// ListByProperty получает бронирования объекта с фильтрацией по номеру, периоду и статусу.
// Период фильтруется по пересечению: в ответ попадают брони, занимающие хотя бы одну ночь периода.
func (s *Service) ListByProperty(ctx context.Context, req *models.GetPropertyBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByProperty: fetching bookings for property=%d, user=%d, room=%v, status=%v, includeCancelled=%t",
		req.PropertyID, req.UserID, req.RoomID, req.Status, req.IncludeCancelled)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByProperty: invalid filter for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return nil, fmt.Errorf("%w: end is before start", ErrInvalidInput)
	}

	if err := s.checkManagerAccess(ctx, req.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByProperty(ctx, filter)
	if err != nil {
		s.logger.Error("ListByProperty: repository error for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: ListByProperty - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListByProperty: successfully fetched %d bookings for property=%d", len(bookings), req.PropertyID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование (только pending и confirmed).
// Отменённое бронирование больше не занимает номер.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if utf8.RuneCountInString(req.CancellationReason) > domain.MaxCancellationReasonLen {
		return fmt.Errorf("%w: cancellation reason is longer than %d characters", ErrInvalidInput, domain.MaxCancellationReasonLen)
	}

	// 1. Проверяем доступ вне транзакции
	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return err
	}
	if err := s.checkManagerAccess(ctx, booking.PropertyID, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return err
	}

	// 2. Проверяем статус и отменяем в одной транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.getBooking(ctx, bookingID, "Cancel")
		if err != nil {
			return err
		}

		if !current.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, current.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus переводит бронирование в следующий статус
// (pending -> confirmed -> checked_in -> checked_out -> completed).
// Для отмены используется Cancel.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// 1. Проверяем доступ вне транзакции
	booking, err := s.getBooking(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return err
	}
	if err := s.checkManagerAccess(ctx, booking.PropertyID, req.UserID); err != nil {
		return err
	}

	// 2. Проверяем переход и обновляем в одной транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.getBooking(ctx, bookingID, "UpdateStatus")
		if err != nil {
			return err
		}

		if !current.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: booking id=%d can not move from %s to %s", bookingID, current.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return booking, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером объекта
func (s *Service) checkManagerAccess(ctx context.Context, propertyID int64, userID int64) error {
	property, err := s.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("checkManagerAccess: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get property: %w", ErrInternal, err)
	}

	if !property.IsManagedBy(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of property=%d", userID, propertyID)
		return ErrAccessDenied
	}

	return nil
}
