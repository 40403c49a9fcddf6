package directoryservice

import "errors"

var (
	// ErrPsychologistNotFound возвращается, когда психолог не найден
	ErrPsychologistNotFound = errors.New("directoryservice client: psychologist not found")

	// ErrClinicNotFound возвращается, когда клиника не найдена
	ErrClinicNotFound = errors.New("directoryservice client: clinic not found")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("directoryservice client: patient not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("directoryservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("directoryservice client: invalid response")
)
