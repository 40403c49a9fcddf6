package rooms

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByClinic(ctx context.Context, clinicID int64, includeInactive bool) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	HasRoomReferences(ctx context.Context, roomID int64) (bool, error)
}

// DirectoryClient интерфейс клиента справочного сервиса
type DirectoryClient interface {
	GetClinic(ctx context.Context, clinicID int64) (*directoryservice.Clinic, error)
	GetPatient(ctx context.Context, patientID int64) (*directoryservice.Patient, error)
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
