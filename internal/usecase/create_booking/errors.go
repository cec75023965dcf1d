package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationMismatch возвращается при нарушении контракта распределения гостей по номерам
	ErrAllocationMismatch = errors.New("create_booking: rooms and occupancies do not match")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrOccupancyExceeded возвращается, когда группа гостей не помещается в номер
	ErrOccupancyExceeded = errors.New("create_booking: occupancy does not fit the room type")

	// ErrRoomNotAvailable возвращается, когда номер уже занят на выбранные даты
	ErrRoomNotAvailable = errors.New("create_booking: room is not available")

	// ErrRestrictionViolated возвращается, когда проживание нарушает правила бронирования
	ErrRestrictionViolated = errors.New("create_booking: booking restriction violated")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_booking: booking not found")

	// ErrBookingLocked возвращается, когда даты бронирования уже нельзя менять
	ErrBookingLocked = errors.New("create_booking: booking can no longer be changed")

	// ErrGuestNotFound возвращается, когда гость не найден в справочнике
	ErrGuestNotFound = errors.New("create_booking: guest not found")

	// ErrGuestBlocked возвращается, когда гостю запрещено бронирование
	ErrGuestBlocked = errors.New("create_booking: guest is blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// RejectionError отказ проверки номера с текстом для гостя.
// errors.Is работает по вложенной ошибке (ErrRoomNotAvailable или ErrRestrictionViolated)
type RejectionError struct {
	RoomID  int64
	Message string
	Err     error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: room %d: %s", e.Err, e.RoomID, e.Message)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}
