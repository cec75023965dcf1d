package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование номера не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrEmptyBatch возвращается при попытке вставить пустой набор бронирований
	ErrEmptyBatch = errors.New("reservation.repository: empty batch")

	// ErrPartialInsert возвращается, когда БД вернула не все вставленные строки
	ErrPartialInsert = errors.New("reservation.repository: partial batch insert")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
