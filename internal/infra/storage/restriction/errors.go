package restriction

import "errors"

var (
	// ErrRestrictionNotFound возвращается, когда правило не найдено
	ErrRestrictionNotFound = errors.New("restriction.repository: restriction not found")

	// ErrInvalidPayload возвращается, когда value правила в БД не соответствует его типу
	ErrInvalidPayload = errors.New("restriction.repository: invalid restriction payload")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("restriction.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("restriction.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("restriction.repository: failed to scan row")
)
