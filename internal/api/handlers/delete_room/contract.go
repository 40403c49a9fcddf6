package delete_room

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms/models"
)

type RoomService interface {
	Delete(ctx context.Context, actorID, roomID int64) (*models.DeleteRoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
