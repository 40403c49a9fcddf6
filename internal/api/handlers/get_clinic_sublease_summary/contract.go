package get_clinic_sublease_summary

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases/models"
)

type SubleaseService interface {
	ClinicSummary(ctx context.Context, clinicID int64, req *models.SummaryRequest) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
