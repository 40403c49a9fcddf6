package decide_room_request

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateRoomAssignment(ctx context.Context, id int64, assignment domain.RoomAssignment) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// DirectoryClient интерфейс клиента справочного сервиса
type DirectoryClient interface {
	GetClinic(ctx context.Context, clinicID int64) (*directoryservice.Clinic, error)
}

// ApprovalHandler обработчик события подтверждения комнаты (учет субаренды)
type ApprovalHandler interface {
	HandleRoomRequestApproved(ctx context.Context, event domain.RoomRequestApproved) (*domain.Sublease, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для метрик решений по комнатам
type Metrics interface {
	IncRoomDecision(action, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
