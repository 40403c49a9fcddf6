package decide_room_request

import (
	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/appointments/models"
	subleaseModels "github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases/models"
	decideRoomRequest "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/decide_room_request"
)

// RoomDecisionRequest HTTP request model
type RoomDecisionRequest struct {
	Action    string `json:"action"` // approve | reject | change
	NewRoomID *int64 `json:"newRoomId,omitempty"`
}

// RoomDecisionResponse HTTP response model
type RoomDecisionResponse struct {
	Appointment *models.AppointmentResponse      `json:"appointment"`
	Sublease    *subleaseModels.SubleaseResponse `json:"sublease,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RoomDecisionRequest) ToUseCaseRequest(actorID, appointmentID int64) *decideRoomRequest.Request {
	return &decideRoomRequest.Request{
		ActorID:       actorID,
		AppointmentID: appointmentID,
		Action:        domain.RoomAction(r.Action),
		NewRoomID:     r.NewRoomID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *decideRoomRequest.Response) *RoomDecisionResponse {
	return &RoomDecisionResponse{
		Appointment: models.FromDomainAppointment(resp.Appointment),
		Sublease:    subleaseModels.FromDomainSublease(resp.Sublease),
	}
}
