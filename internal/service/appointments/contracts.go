package appointments

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListRoomRequests(ctx context.Context, filter appointmentRepo.RoomRequestsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// DirectoryClient интерфейс клиента справочного сервиса
type DirectoryClient interface {
	GetClinic(ctx context.Context, clinicID int64) (*directoryservice.Clinic, error)
}

// SubleaseCanceller отменяет субаренду отмененной записи
type SubleaseCanceller interface {
	CancelByAppointment(ctx context.Context, appointmentID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
