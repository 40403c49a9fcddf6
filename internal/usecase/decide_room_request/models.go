package decide_room_request

import "github.com/m04kA/SMC-ClinicScheduling/internal/domain"

// Request решение сотрудника клиники по запросу комнаты
type Request struct {
	ActorID       int64
	AppointmentID int64
	Action        domain.RoomAction
	NewRoomID     *int64 // только для change
}

// Response обновленная запись и созданная субаренда (если применима)
type Response struct {
	Appointment *domain.Appointment
	Sublease    *domain.Sublease
}
