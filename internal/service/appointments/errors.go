package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrClinicNotFound возвращается, когда клиника не найдена
	ErrClinicNotFound = errors.New("appointments: clinic not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к записи
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrTerminalStatus возвращается при попытке изменить завершенную или отмененную запись
	ErrTerminalStatus = errors.New("appointments: appointment status is final")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrDirectoryUnavailable возвращается, когда справочный сервис не ответил
	ErrDirectoryUnavailable = errors.New("appointments: directory service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
