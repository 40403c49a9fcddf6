package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrRoomRequestNotPending возвращается, когда запрос комнаты уже не в статусе pending
	ErrRoomRequestNotPending = errors.New("appointment.repository: room request is not pending")

	// ErrStatusNotUpdated возвращается, когда статус не изменился (запись в терминальном статусе)
	ErrStatusNotUpdated = errors.New("appointment.repository: status not updated")

	// ErrRoomReference возвращается, когда room_id ссылается на несуществующую комнату
	ErrRoomReference = errors.New("appointment.repository: referenced room does not exist")

	// ErrConstraintViolation возвращается, когда строка нарушает CHECK ограничение таблицы
	ErrConstraintViolation = errors.New("appointment.repository: check constraint violated")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
