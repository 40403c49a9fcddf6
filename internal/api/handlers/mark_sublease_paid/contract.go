package mark_sublease_paid

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases/models"
)

type SubleaseService interface {
	MarkPaid(ctx context.Context, actorID, subleaseID int64) (*models.SubleaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
