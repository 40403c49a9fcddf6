package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
)

// DirectoryClient интерфейс клиента справочного сервиса
type DirectoryClient interface {
	GetSlots(ctx context.Context, psychologistID int64, date time.Time) ([]directoryservice.Slot, error)
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
