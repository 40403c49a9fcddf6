package sublease

import "errors"

var (
	// ErrSubleaseNotFound возвращается, когда субаренда не найдена
	ErrSubleaseNotFound = errors.New("sublease.repository: sublease not found")

	// ErrSubleaseExists возвращается, когда для записи уже есть субаренда
	ErrSubleaseExists = errors.New("sublease.repository: sublease already exists for appointment")

	// ErrNotPending возвращается, когда субаренда уже не в статусе pending
	ErrNotPending = errors.New("sublease.repository: sublease is not pending")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sublease.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sublease.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sublease.repository: failed to scan row")
)
