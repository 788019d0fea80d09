package gesture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

const keyPrefix = "gesture:"

// Store хранит незавершённые жесты в Redis.
// Сессия живёт до Commit или до истечения TTL (брошенный drag).
type Store struct {
	rdb *redis.Client
}

// NewStore создает хранилище сессий жестов
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// record формат хранения сессии в Redis
type record struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	PropertyID int64     `json:"property_id"`
	Kind       string    `json:"kind"`
	StartedAt  time.Time `json:"started_at"`

	BookingID     int64                `json:"booking_id"`
	RoomID        int64                `json:"room_id"`
	CheckIn       types.Date           `json:"check_in"`
	CheckOut      types.Date           `json:"check_out"`
	BookingStatus domain.BookingStatus `json:"booking_status"`
	GuestName     string               `json:"guest_name"`
}

// Save сохраняет сессию с TTL
func (s *Store) Save(ctx context.Context, session *domain.GestureSession, ttl time.Duration) error {
	payload, err := json.Marshal(toRecord(session))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	if err := s.rdb.Set(ctx, key(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %w", ErrRedis, err)
	}

	return nil
}

// Get возвращает сессию по ID
func (s *Store) Get(ctx context.Context, id string) (*domain.GestureSession, error) {
	payload, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %w", ErrRedis, err)
	}

	var rec record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return rec.toSession(), nil
}

// Delete удаляет сессию. Отсутствие сессии не считается ошибкой.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %w", ErrRedis, err)
	}
	return nil
}

func key(id string) string {
	return keyPrefix + id
}

func toRecord(session *domain.GestureSession) record {
	return record{
		ID:            session.ID,
		UserID:        session.UserID,
		PropertyID:    session.PropertyID,
		Kind:          session.Kind,
		StartedAt:     session.StartedAt,
		BookingID:     session.Booking.ID,
		RoomID:        session.Booking.RoomID,
		CheckIn:       session.Booking.CheckIn,
		CheckOut:      session.Booking.CheckOut,
		BookingStatus: session.Booking.Status,
		GuestName:     session.Booking.GuestName,
	}
}

func (r record) toSession() *domain.GestureSession {
	return &domain.GestureSession{
		ID:         r.ID,
		UserID:     r.UserID,
		PropertyID: r.PropertyID,
		Kind:       r.Kind,
		StartedAt:  r.StartedAt,
		Booking: domain.Booking{
			ID:         r.BookingID,
			PropertyID: r.PropertyID,
			RoomID:     r.RoomID,
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
			Status:     r.BookingStatus,
			GuestName:  r.GuestName,
		},
	}
}
