package restrictions

import "errors"

var (
	// ErrRestrictionNotFound возвращается, когда правило не найдено
	ErrRestrictionNotFound = errors.New("restriction not found")

	// ErrClosedDateNotFound возвращается, когда закрытая дата не найдена
	ErrClosedDateNotFound = errors.New("closed date not found")

	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("restrictions service: internal error")
)
