package get_clinic_subleases

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases/models"
)

type SubleaseService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.SubleaseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
