package get_room_type_availability

import (
	"context"

	availabilityGrid "github.com/m04kA/SMC-StayService/internal/usecase/availability_grid"
)

type AvailabilityGridUseCase interface {
	RoomTypeGrid(ctx context.Context, req *availabilityGrid.Request) (*availabilityGrid.RoomTypeGridResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
