package get_room_requests

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/service/appointments/models"
)

type AppointmentService interface {
	ListRoomRequests(ctx context.Context, req *models.ListRoomRequestsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
