package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.RatePlanID <= 0 {
		return fmt.Errorf("%w: ratePlanID must be positive", ErrInvalidInput)
	}

	if err := validateStay(req.CheckIn, req.CheckOut); err != nil {
		return err
	}

	if len(req.RoomIDs) > domain.MaxRoomsPerBooking {
		return fmt.Errorf("%w: at most %d rooms per booking", ErrInvalidInput, domain.MaxRoomsPerBooking)
	}

	for i, occ := range req.Occupancies {
		if occ.Adults < domain.MinAdultsPerRoom {
			return fmt.Errorf("%w: group %d: at least %d adult required", ErrInvalidInput, i+1, domain.MinAdultsPerRoom)
		}
		if occ.Children < 0 {
			return fmt.Errorf("%w: group %d: children must not be negative", ErrInvalidInput, i+1)
		}
	}

	for roomID, total := range req.CustomRoomTotals {
		if total < 0 {
			return fmt.Errorf("%w: room %d: custom total must not be negative", ErrInvalidInput, roomID)
		}
	}

	switch req.Status {
	case "", domain.StatusTentative, domain.StatusConfirmed:
	default:
		return fmt.Errorf("%w: booking can only be created as %s or %s", ErrInvalidInput, domain.StatusTentative, domain.StatusConfirmed)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStay проверяет даты проживания
func validateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	stay := dates.NewRange(checkIn, checkOut)
	if !stay.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidInput, domain.MsgInvalidDateRange)
	}

	if stay.Nights() > domain.MaxStayNights {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}
