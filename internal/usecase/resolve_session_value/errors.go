package resolve_session_value

import "errors"

var (
	// ErrPsychologistNotFound возвращается, когда психолог не найден
	ErrPsychologistNotFound = errors.New("resolve_session_value: psychologist not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_session_value: invalid input data")

	// ErrDirectoryUnavailable возвращается, когда справочный сервис не ответил
	ErrDirectoryUnavailable = errors.New("resolve_session_value: directory service unavailable")
)
