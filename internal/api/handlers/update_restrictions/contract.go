package update_restrictions

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/restrictions/models"
)

type RestrictionService interface {
	Create(ctx context.Context, req *models.CreateRestrictionRequest) (*models.RestrictionResponse, error)
	Delete(ctx context.Context, id int64) error
	CreateClosedDate(ctx context.Context, req *models.CreateClosedDateRequest) (*models.ClosedDateResponse, error)
	DeleteClosedDate(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
