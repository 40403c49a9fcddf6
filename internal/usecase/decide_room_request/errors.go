package decide_room_request

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("decide_room_request: appointment not found")

	// ErrRequestNotPending возвращается, когда запрос комнаты не ожидает решения
	ErrRequestNotPending = errors.New("decide_room_request: room request is not pending")

	// ErrForbidden возвращается, когда пользователь не сотрудник клиники комнаты
	ErrForbidden = errors.New("decide_room_request: actor is not staff of the room clinic")

	// ErrInvalidNewRoom возвращается, когда новая комната не найдена, выключена, совпадает с текущей или из другой клиники
	ErrInvalidNewRoom = errors.New("decide_room_request: invalid new room")

	// ErrDirectoryUnavailable возвращается, когда справочный сервис не ответил
	ErrDirectoryUnavailable = errors.New("decide_room_request: directory service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("decide_room_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_room_request: internal error")
)
