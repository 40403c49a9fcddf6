package list_clinic_rooms

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms/models"
)

type RoomService interface {
	ListByClinic(ctx context.Context, clinicID int64, includeInactive bool) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
