package subleases

import "errors"

var (
	// ErrSubleaseNotFound возвращается, когда субаренда не найдена
	ErrSubleaseNotFound = errors.New("subleases: sublease not found")

	// ErrSubleaseExists возвращается, когда для записи уже создана субаренда
	ErrSubleaseExists = errors.New("subleases: sublease already exists for appointment")

	// ErrCannotMarkPaid возвращается, когда субаренда не в статусе pending
	ErrCannotMarkPaid = errors.New("subleases: only pending sublease can be marked as paid")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("subleases: room not found")

	// ErrClinicNotFound возвращается, когда клиника не найдена
	ErrClinicNotFound = errors.New("subleases: clinic not found")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("subleases: patient not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа
	ErrAccessDenied = errors.New("subleases: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("subleases: invalid input data")

	// ErrDirectoryUnavailable возвращается, когда справочный сервис не ответил
	ErrDirectoryUnavailable = errors.New("subleases: directory service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("subleases: internal error")
)
