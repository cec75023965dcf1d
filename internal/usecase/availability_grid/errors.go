package availability_grid

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrDataIntegrity возвращается, когда на один номер в одну дату приходится
	// больше одного действующего бронирования
	ErrDataIntegrity = errors.New("data integrity violation: overlapping reservations on one room")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("availability grid usecase: internal error")
)
