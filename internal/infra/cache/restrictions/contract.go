package restrictioncache

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Source источник правил (репозиторий БД)
type Source interface {
	GetAll(ctx context.Context) ([]*domain.Restriction, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
