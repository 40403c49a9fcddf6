package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrClinicNotFound возвращается, когда клиника не найдена
	ErrClinicNotFound = errors.New("rooms: clinic not found")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("rooms: patient not found")

	// ErrAccessDenied возвращается, когда пользователь не сотрудник клиники
	ErrAccessDenied = errors.New("rooms: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rooms: invalid input data")

	// ErrDirectoryUnavailable возвращается, когда справочный сервис не ответил
	ErrDirectoryUnavailable = errors.New("rooms: directory service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
