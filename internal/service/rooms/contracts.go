package rooms

import (
	"context"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByProperty(ctx context.Context, propertyID int64, includeInactive bool) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
