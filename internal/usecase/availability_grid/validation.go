package availability_grid

import (
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: 'from' and 'to' are required", ErrInvalidInput)
	}

	from, to := dates.Normalize(req.From), dates.Normalize(req.To)
	if to.Before(from) {
		return fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	if days := len(dates.Grid(from, to)); days > domain.MaxGridDays {
		return fmt.Errorf("%w: grid must not exceed %d days, got %d", ErrInvalidInput, domain.MaxGridDays, days)
	}

	return nil
}
