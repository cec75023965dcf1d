package validate_booking

import (
	"time"

	"github.com/google/uuid"
)

// Причины отказа
const (
	ReasonInvalidDates = "invalid_dates"
	ReasonOccupancy    = "occupancy"
	ReasonOverlap      = "overlap"
	ReasonRestriction  = "restriction"
)

// Request модель запроса проверки одного номера перед записью
type Request struct {
	CheckIn          time.Time
	CheckOut         time.Time
	RoomID           int64
	Adults           int
	Children         int
	ExcludeBookingID *uuid.UUID // при редактировании: не конфликтовать с самим собой
}

// Result результат проверки. Отказ - это результат, а не ошибка
type Result struct {
	IsValid bool
	Message string // текст для гостя
	Reason  string // машинная причина отказа
}

func valid() *Result {
	return &Result{IsValid: true}
}

func rejected(reason, message string) *Result {
	return &Result{IsValid: false, Message: message, Reason: reason}
}
