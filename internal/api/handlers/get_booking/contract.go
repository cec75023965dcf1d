package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

type BookingService interface {
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
