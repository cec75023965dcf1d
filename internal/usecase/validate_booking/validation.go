package validate_booking

import "fmt"

// validateRequest проверяет предусловия. Нарушение - ошибка вызывающей стороны
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.Adults < 0 || req.Children < 0 {
		return fmt.Errorf("%w: guest counts must not be negative", ErrInvalidInput)
	}

	return nil
}
