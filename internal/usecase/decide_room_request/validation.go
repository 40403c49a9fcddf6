package decide_room_request

import (
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if !req.Action.IsValid() {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	if req.Action == domain.RoomActionChange && (req.NewRoomID == nil || *req.NewRoomID <= 0) {
		return fmt.Errorf("%w: newRoomID must be positive", ErrInvalidNewRoom)
	}

	return nil
}
