package search_availability

import (
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DateRange.From.IsZero() || req.DateRange.To.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}

	if !req.DateRange.IsValid() {
		return fmt.Errorf("%w: 'to' must be after 'from'", ErrInvalidInput)
	}

	if req.DateRange.Nights() > domain.MaxStayNights {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	if len(req.RoomOccupancies) == 0 {
		return fmt.Errorf("%w: at least one room occupancy is required", ErrInvalidInput)
	}

	if len(req.RoomOccupancies) > domain.MaxRoomsPerBooking {
		return fmt.Errorf("%w: at most %d rooms per request", ErrInvalidInput, domain.MaxRoomsPerBooking)
	}

	for i, occ := range req.RoomOccupancies {
		if occ.Adults < domain.MinAdultsPerRoom {
			return fmt.Errorf("%w: room %d: at least %d adult required", ErrInvalidInput, i+1, domain.MinAdultsPerRoom)
		}
		if occ.Children < 0 {
			return fmt.Errorf("%w: room %d: children must not be negative", ErrInvalidInput, i+1)
		}
		if occ.Total() > domain.MaxGuestsPerRoom {
			return fmt.Errorf("%w: room %d: at most %d guests", ErrInvalidInput, i+1, domain.MaxGuestsPerRoom)
		}
	}

	return nil
}
