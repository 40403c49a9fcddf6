package schedule_appointment

import "errors"

var (
	// ErrPsychologistNotFound возвращается, когда психолог не найден
	ErrPsychologistNotFound = errors.New("schedule_appointment: psychologist not found")

	// ErrRoomNotFound возвращается, когда запрошенная комната не найдена
	ErrRoomNotFound = errors.New("schedule_appointment: room not found")

	// ErrRoomInactive возвращается, когда запрошенная комната выключена
	ErrRoomInactive = errors.New("schedule_appointment: room is inactive")

	// ErrDateInPast возвращается, когда время записи не в будущем
	ErrDateInPast = errors.New("schedule_appointment: appointment date must be in the future")

	// ErrSeriesFailed возвращается, когда не удалось создать ни одной записи серии.
	// Вместе с ошибкой возвращается результат со счетчиками.
	ErrSeriesFailed = errors.New("schedule_appointment: no appointment of the series could be created")

	// ErrCreateFailed возвращается, когда хранилище не сохранило одиночную запись
	ErrCreateFailed = errors.New("schedule_appointment: failed to save appointment")

	// ErrDirectoryUnavailable возвращается, когда справочный сервис не ответил
	ErrDirectoryUnavailable = errors.New("schedule_appointment: directory service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_appointment: internal error")
)
