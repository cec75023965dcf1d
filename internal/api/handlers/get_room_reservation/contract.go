package get_room_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

type AvailabilityGridUseCase interface {
	RoomDay(ctx context.Context, roomID int64, date time.Time) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
