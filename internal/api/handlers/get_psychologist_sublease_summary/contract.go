package get_psychologist_sublease_summary

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases/models"
)

type SubleaseService interface {
	PsychologistSummary(ctx context.Context, psychologistID int64, req *models.SummaryRequest) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
