package get_room_availability

import (
	"context"

	availabilityGrid "github.com/m04kA/SMC-StayService/internal/usecase/availability_grid"
)

type AvailabilityGridUseCase interface {
	RoomGrid(ctx context.Context, req *availabilityGrid.Request) (*availabilityGrid.RoomGridResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
