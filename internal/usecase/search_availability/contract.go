package search_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/restrictions"
)

// InventoryRepository интерфейс репозитория типов номеров и номеров
type InventoryRepository interface {
	GetRoomTypes(ctx context.Context) ([]*domain.RoomType, error)
	GetRooms(ctx context.Context) ([]*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// RestrictionSource источник правил бронирования (БД или кэш)
type RestrictionSource interface {
	GetAll(ctx context.Context) ([]*domain.Restriction, error)
}

// ClosedDateRepository интерфейс репозитория закрытых дат
type ClosedDateRepository interface {
	GetBetween(ctx context.Context, from, to time.Time) ([]*domain.ClosedDate, error)
}

// RestrictionEvaluator проверка проживания по правилам
type RestrictionEvaluator interface {
	Evaluate(checkIn, checkOut time.Time, roomTypeID int64, list []*domain.Restriction) restrictions.Result
}

// MetricsCollector счетчик результатов поиска
type MetricsCollector interface {
	IncAvailabilitySearch(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
