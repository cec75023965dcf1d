package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/integrations/guestservice"
	"github.com/m04kA/SMC-StayService/internal/usecase/validate_booking"
)

// InventoryRepository интерфейс репозитория номеров
type InventoryRepository interface {
	GetRoomsByIDs(ctx context.Context, ids []int64) ([]*domain.Room, error)
	GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CreateBatch(ctx context.Context, reservations []*domain.Reservation) ([]*domain.Reservation, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*domain.Reservation, error)
	UpdateDates(ctx context.Context, id int64, checkIn, checkOut time.Time) error
}

// BookingValidator повторная проверка номера перед записью
type BookingValidator interface {
	Execute(ctx context.Context, req *validate_booking.Request) (*validate_booking.Result, error)
}

// GuestDirectory справочник гостей
type GuestDirectory interface {
	GetGuestWithGracefulDegradation(ctx context.Context, guestID int64) (*guestservice.Guest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
