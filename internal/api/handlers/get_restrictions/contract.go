package get_restrictions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/service/restrictions/models"
)

type RestrictionService interface {
	List(ctx context.Context) ([]models.RestrictionResponse, error)
	ListClosedDates(ctx context.Context, from, to time.Time) ([]models.ClosedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
