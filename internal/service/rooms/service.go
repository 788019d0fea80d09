package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/room"
	propertyClient "github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/service/rooms/models"
)

// Service сервис для управления номерами объекта размещения
type Service struct {
	roomRepo       RoomRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(
	roomRepo RoomRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:       roomRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// Create создает новый активный номер.
// Доступно только менеджерам объекта.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room %q for property=%d by user=%d", req.Name, req.PropertyID, req.UserID)

	room := &domain.Room{
		PropertyID:    req.PropertyID,
		Name:          strings.TrimSpace(req.Name),
		TotalUnits:    req.TotalUnits,
		IsActive:      true,
		MinStayNights: req.MinStayNights,
		MaxStayNights: req.MaxStayNights,
	}

	// 1. Валидируем входные данные
	if err := validateRoom(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа
	if err := s.checkManagerAccess(ctx, req.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Создаем номер
	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateRoom) {
			s.logger.Warn("Create: room %q already exists in property=%d", room.Name, req.PropertyID)
			return nil, ErrRoomAlreadyExists
		}
		s.logger.Error("Create: repository error for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update обновляет номер.
// Изменение правил min/max stay не затрагивает существующие бронирования.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d by user=%d", id, req.UserID)

	// 1. Получаем номер
	room, err := s.getRoom(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	// 2. Проверяем права доступа
	if err := s.checkManagerAccess(ctx, room.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Применяем изменения и валидируем результат
	req.ApplyToRoom(room)
	room.Name = strings.TrimSpace(room.Name)
	if err := validateRoom(room); err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", id, err)
		return nil, err
	}

	// 4. Сохраняем
	if err := s.roomRepo.Update(ctx, room); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrDuplicateRoom):
			return nil, ErrRoomAlreadyExists
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return models.FromDomainRoom(room), nil
}

// Deactivate выключает номер: он пропадает из календаря и не принимает новые бронирования
func (s *Service) Deactivate(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Deactivate: deactivating room id=%d by user=%d", id, userID)

	room, err := s.getRoom(ctx, id, "Deactivate")
	if err != nil {
		return err
	}

	if err := s.checkManagerAccess(ctx, room.PropertyID, userID); err != nil {
		return err
	}

	if !room.IsActive {
		s.logger.Info("Deactivate: room id=%d is already inactive", id)
		return nil
	}

	if err := s.roomRepo.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("Deactivate: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated room id=%d", id)
	return nil
}

// List возвращает номера объекта в порядке ID
func (s *Service) List(ctx context.Context, propertyID, userID int64, includeInactive bool) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms for property=%d, user=%d, includeInactive=%t", propertyID, userID, includeInactive)

	if err := s.checkManagerAccess(ctx, propertyID, userID); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListByProperty(ctx, propertyID, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

func (s *Service) getRoom(ctx context.Context, id int64, op string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return room, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером объекта
func (s *Service) checkManagerAccess(ctx context.Context, propertyID, userID int64) error {
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

// validateRoom валидирует параметры номера
func validateRoom(room *domain.Room) error {
	if room.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyId must be positive", ErrInvalidInput)
	}

	nameLen := utf8.RuneCountInString(room.Name)
	if nameLen == 0 || nameLen > domain.MaxRoomNameLength {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxRoomNameLength)
	}

	if room.TotalUnits < domain.MinTotalUnits || room.TotalUnits > domain.MaxTotalUnits {
		return fmt.Errorf("%w: totalUnits must be between %d and %d", ErrInvalidInput, domain.MinTotalUnits, domain.MaxTotalUnits)
	}

	if room.MinStayNights < 0 || room.MinStayNights > domain.MaxStayNightsLimit {
		return fmt.Errorf("%w: minStayNights must be between 0 and %d", ErrInvalidInput, domain.MaxStayNightsLimit)
	}
	if room.MaxStayNights < 0 || room.MaxStayNights > domain.MaxStayNightsLimit {
		return fmt.Errorf("%w: maxStayNights must be between 0 and %d", ErrInvalidInput, domain.MaxStayNightsLimit)
	}

	// 0 означает отсутствие ограничения
	if room.HasMinStay() && room.HasMaxStay() && room.MinStayNights > room.MaxStayNights {
		return fmt.Errorf("%w: minStayNights must not exceed maxStayNights", ErrInvalidInput)
	}

	return nil
}
