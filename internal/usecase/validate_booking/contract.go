package validate_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/restrictions"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetWithFilter внутри транзакции блокирует найденные строки (FOR UPDATE)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// RestrictionSource источник правил бронирования (БД или кэш)
type RestrictionSource interface {
	GetAll(ctx context.Context) ([]*domain.Restriction, error)
}

// RestrictionEvaluator проверка проживания по правилам
type RestrictionEvaluator interface {
	Evaluate(checkIn, checkOut time.Time, roomTypeID int64, list []*domain.Restriction) restrictions.Result
}

// MetricsCollector счетчик результатов проверки
type MetricsCollector interface {
	IncBookingValidation(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
