package gesture

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	gestureStore "github.com/m04kA/SMC-StayCalendar/internal/infra/cache/gesture"
	bookingRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/booking"
	propertyClient "github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

// UseCase жест drag/resize из трёх фаз: Begin, Preview (многократно), Commit.
// Preview работает только с копией бронирования из сессии и ничего не проверяет,
// Commit передаёт итоговый сдвиг в update_stay, где выполняется полная проверка.
type UseCase struct {
	bookingRepo    BookingRepository
	store          SessionStore
	updater        StayUpdater
	propertyClient PropertyServiceClient
	settings       Settings
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	store SessionStore,
	updater StayUpdater,
	propertyClient PropertyServiceClient,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		store:          store,
		updater:        updater,
		propertyClient: propertyClient,
		settings:       settings,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Begin начинает жест над бронированием
func (uc *UseCase) Begin(ctx context.Context, req *BeginRequest) (*BeginResponse, error) {
	uc.logger.Info("BeginGesture: user=%d, booking=%d, kind=%s", req.UserID, req.BookingID, req.Kind)

	// 1. Валидация
	if req.UserID <= 0 || req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: userID and bookingID must be positive", ErrInvalidInput)
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown gesture kind %q", ErrInvalidInput, req.Kind)
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("BeginGesture: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}

	if !booking.CanBeMoved() {
		uc.logger.Warn("BeginGesture: booking id=%d has status %s", booking.ID, booking.Status)
		return nil, ErrBookingNotMovable
	}

	// 3. Проверяем доступ
	if err := uc.checkAccess(ctx, booking.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	// 4. Фиксируем копию бронирования
	g, err := scheduling.BeginGesture(booking, req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()
	session := &domain.GestureSession{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		PropertyID: booking.PropertyID,
		Kind:       string(g.Kind),
		Booking:    g.Booking,
		StartedAt:  now,
	}

	// 5. Сохраняем сессию
	if err := uc.store.Save(ctx, session, uc.settings.TTL); err != nil {
		uc.logger.Error("BeginGesture: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: failed to save session: %w", ErrInternal, err)
	}

	uc.logger.Info("BeginGesture: gesture id=%s started for booking id=%d", session.ID, booking.ID)

	return &BeginResponse{
		GestureID: session.ID,
		Kind:      g.Kind,
		Booking:   g.Booking,
		ExpiresAt: now.Add(uc.settings.TTL),
	}, nil
}

// Preview возвращает положение блока для текущего сдвига. Только чтение.
func (uc *UseCase) Preview(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error) {
	session, err := uc.session(ctx, req.UserID, req.GestureID)
	if err != nil {
		return nil, err
	}

	window, err := uc.window(req.WindowStart, req.Days, req.Zoom)
	if err != nil {
		return nil, err
	}

	g := scheduling.Gesture{Booking: session.Booking, Kind: scheduling.GestureKind(session.Kind)}
	target, roomID := g.Target(req.DayDelta, req.TargetRoomID)

	return &PreviewResponse{
		RoomID:       roomID,
		CheckIn:      target.Start,
		CheckOut:     target.End,
		PixelsPerDay: window.PixelsPerDay,
		Position:     g.Preview(req.DayDelta, req.TargetRoomID, window),
	}, nil
}

// Commit завершает жест: сохраняет изменение или возвращает отказ.
// При нарушении правил длительности сессия сохраняется, чтобы клиент мог
// повторить Commit с override.
func (uc *UseCase) Commit(ctx context.Context, req *CommitRequest) (*update_stay.Response, error) {
	uc.logger.Info("CommitGesture: user=%d, gesture=%s, delta=%d, target_room=%d",
		req.UserID, req.GestureID, req.DayDelta, req.TargetRoomID)

	session, err := uc.session(ctx, req.UserID, req.GestureID)
	if err != nil {
		return nil, err
	}

	kind := scheduling.GestureKind(session.Kind)

	var resp *update_stay.Response
	if kind == scheduling.GestureDrag {
		resp, err = uc.updater.Move(ctx, &update_stay.MoveRequest{
			UserID:       req.UserID,
			BookingID:    session.Booking.ID,
			DayDelta:     req.DayDelta,
			TargetRoomID: req.TargetRoomID,
			Override:     req.Override,
			Expected:     update_stay.SnapshotOf(&session.Booking),
		})
	} else {
		resp, err = uc.updater.Resize(ctx, &update_stay.ResizeRequest{
			UserID:    req.UserID,
			BookingID: session.Booking.ID,
			Direction: kind.ResizeDirection(),
			DayDelta:  req.DayDelta,
			Override:  req.Override,
			Expected:  update_stay.SnapshotOf(&session.Booking),
		})
	}

	if errors.Is(err, update_stay.ErrStayRuleViolation) {
		return nil, err
	}

	if delErr := uc.store.Delete(ctx, session.ID); delErr != nil {
		uc.logger.Warn("CommitGesture: failed to delete session id=%s: %v", session.ID, delErr)
	}

	return resp, err
}

// Cancel прерывает жест без изменений (например, Escape во время drag)
func (uc *UseCase) Cancel(ctx context.Context, userID int64, gestureID string) error {
	session, err := uc.session(ctx, userID, gestureID)
	if err != nil {
		return err
	}

	if err := uc.store.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("%w: failed to delete session: %w", ErrInternal, err)
	}

	uc.logger.Info("CancelGesture: gesture id=%s cancelled", session.ID)
	return nil
}

// session загружает сессию и проверяет, что она принадлежит пользователю
func (uc *UseCase) session(ctx context.Context, userID int64, gestureID string) (*domain.GestureSession, error) {
	if _, err := uuid.Parse(gestureID); err != nil {
		return nil, ErrGestureNotFound
	}

	session, err := uc.store.Get(ctx, gestureID)
	if err != nil {
		if errors.Is(err, gestureStore.ErrSessionNotFound) {
			return nil, ErrGestureNotFound
		}
		uc.logger.Error("Gesture: failed to get session id=%s: %v", gestureID, err)
		return nil, fmt.Errorf("%w: failed to get session: %w", ErrInternal, err)
	}

	if session.UserID != userID {
		uc.logger.Warn("Gesture: user=%d tried to use gesture id=%s of user=%d", userID, gestureID, session.UserID)
		return nil, ErrGestureNotFound
	}

	return session, nil
}

func (uc *UseCase) window(start types.Date, days int, zoom *int) (scheduling.Window, error) {
	if start.IsZero() {
		return scheduling.Window{}, fmt.Errorf("%w: window start is required", ErrInvalidInput)
	}
	if days <= 0 || days > uc.settings.MaxDays {
		return scheduling.Window{}, fmt.Errorf("%w: days must be in 1..%d", ErrInvalidInput, uc.settings.MaxDays)
	}

	level := uc.settings.DefaultZoom
	if zoom != nil {
		level = *zoom
	}
	if level < 0 || level >= len(uc.settings.PixelsPerDay) {
		return scheduling.Window{}, fmt.Errorf("%w: zoom must be in 0..%d", ErrInvalidInput, len(uc.settings.PixelsPerDay)-1)
	}

	return scheduling.Window{Start: start, Days: days, PixelsPerDay: uc.settings.PixelsPerDay[level]}, nil
}

// checkAccess проверяет, что пользователь является менеджером объекта
func (uc *UseCase) checkAccess(ctx context.Context, propertyID, userID int64) error {
	property, err := uc.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			return ErrPropertyNotFound
		}
		uc.logger.Error("BeginGesture: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: failed to get property: %w", ErrInternal, err)
	}

	if !property.IsManagedBy(userID) {
		uc.logger.Warn("BeginGesture: user=%d is not a manager of property=%d", userID, propertyID)
		return ErrAccessDenied
	}

	return nil
}
