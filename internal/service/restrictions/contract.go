package restrictions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// RestrictionRepository интерфейс репозитория правил бронирования
type RestrictionRepository interface {
	Create(ctx context.Context, restriction *domain.Restriction) (*domain.Restriction, error)
	GetAll(ctx context.Context) ([]*domain.Restriction, error)
	Delete(ctx context.Context, id int64) error
}

// ClosedDateRepository интерфейс репозитория закрытых дат
type ClosedDateRepository interface {
	Create(ctx context.Context, closed *domain.ClosedDate) (*domain.ClosedDate, error)
	GetBetween(ctx context.Context, from, to time.Time) ([]*domain.ClosedDate, error)
	Delete(ctx context.Context, id int64) error
}

// RoomTypeReader проверка существования типа номера
type RoomTypeReader interface {
	GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error)
}

// CacheInvalidator сброс кэша правил после изменений
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
