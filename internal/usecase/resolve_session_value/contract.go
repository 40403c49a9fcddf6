package resolve_session_value

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
)

// DirectoryClient интерфейс клиента справочного сервиса
type DirectoryClient interface {
	GetPsychologist(ctx context.Context, psychologistID int64) (*directoryservice.Psychologist, error)
	GetClinic(ctx context.Context, clinicID int64) (*directoryservice.Clinic, error)
}

// Metrics интерфейс для метрик деградации
type Metrics interface {
	IncDirectoryFallback(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
