package availability_grid

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// InventoryRepository интерфейс репозитория типов номеров и номеров
type InventoryRepository interface {
	GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error)
	GetRoomsByType(ctx context.Context, roomTypeID int64) ([]*domain.Room, error)
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ClosedDateRepository интерфейс репозитория закрытых дат
type ClosedDateRepository interface {
	GetBetween(ctx context.Context, from, to time.Time) ([]*domain.ClosedDate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
