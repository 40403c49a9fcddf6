package decide_room_request

import (
	"context"

	decideRoomRequest "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/decide_room_request"
)

type DecideRoomRequestUseCase interface {
	Execute(ctx context.Context, req *decideRoomRequest.Request) (*decideRoomRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
