package update_booking_dates

import (
	"context"

	createBooking "github.com/m04kA/SMC-StayService/internal/usecase/create_booking"
)

type UpdateDatesUseCase interface {
	UpdateDates(ctx context.Context, req *createBooking.UpdateDatesRequest) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
