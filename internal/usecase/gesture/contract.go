package gesture

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// SessionStore хранилище незавершённых жестов
type SessionStore interface {
	Save(ctx context.Context, session *domain.GestureSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.GestureSession, error)
	Delete(ctx context.Context, id string) error
}

// StayUpdater сохранение drag/resize (use case update_stay)
type StayUpdater interface {
	Move(ctx context.Context, req *update_stay.MoveRequest) (*update_stay.Response, error)
	Resize(ctx context.Context, req *update_stay.ResizeRequest) (*update_stay.Response, error)
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
