package check_sublease_applicability

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms/models"
)

type RoomService interface {
	CheckSubleaseApplicability(ctx context.Context, roomID, patientID int64, clinicID *int64) (*models.SubleaseApplicabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
