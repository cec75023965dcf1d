package validate_booking

import (
	"github.com/google/uuid"

	validateBooking "github.com/m04kA/SMC-StayService/internal/usecase/validate_booking"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	CheckIn   string  `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut  string  `json:"checkOut" validate:"required,datetime=2006-01-02"`
	RoomID    int64   `json:"roomId" validate:"required,gt=0"`
	Adults    int     `json:"adults" validate:"gte=0"`
	Children  int     `json:"children" validate:"gte=0"`
	BookingID *string `json:"bookingId,omitempty" validate:"omitempty,uuid"` // редактируемое бронирование
}

// ValidateBookingResponse HTTP response model
type ValidateBookingResponse struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateBookingRequest) ToUseCaseRequest() (*validateBooking.Request, error) {
	checkIn, err := dates.Parse(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := dates.Parse(r.CheckOut)
	if err != nil {
		return nil, err
	}

	req := &validateBooking.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomID:   r.RoomID,
		Adults:   r.Adults,
		Children: r.Children,
	}

	if r.BookingID != nil {
		bookingID, err := uuid.Parse(*r.BookingID)
		if err != nil {
			return nil, err
		}
		req.ExcludeBookingID = &bookingID
	}

	return req, nil
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(res *validateBooking.Result) *ValidateBookingResponse {
	return &ValidateBookingResponse{
		IsValid: res.IsValid,
		Message: res.Message,
		Reason:  res.Reason,
	}
}
