package subleases

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
)

// SubleaseRepository интерфейс репозитория субаренд
type SubleaseRepository interface {
	Create(ctx context.Context, sublease *domain.Sublease) (*domain.Sublease, error)
	GetByID(ctx context.Context, id int64) (*domain.Sublease, error)
	MarkPaid(ctx context.Context, id int64, paidAt time.Time) error
	CancelByAppointment(ctx context.Context, appointmentID int64, cancelledAt time.Time) (bool, error)
	List(ctx context.Context, filter domain.SubleaseFilter) ([]*domain.Sublease, int, error)
	Summary(ctx context.Context, filter domain.SubleaseSummaryFilter) (*domain.SubleaseSummary, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// DirectoryClient интерфейс клиента справочного сервиса
type DirectoryClient interface {
	GetClinic(ctx context.Context, clinicID int64) (*directoryservice.Clinic, error)
	GetPatient(ctx context.Context, patientID int64) (*directoryservice.Patient, error)
}

// Metrics счетчики субаренд
type Metrics interface {
	IncSubleaseCreated()
	IncSubleasePaid()
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
