package decide_room_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/appointment"
	roomRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/room"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/ptr"
)

// UseCase use case решения по запросу комнаты: approve, reject, change
type UseCase struct {
	appointmentRepo AppointmentRepository
	roomRepo        RoomRepository
	directory       DirectoryClient
	approvals       ApprovalHandler
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	roomRepo RoomRepository,
	directory DirectoryClient,
	approvals ApprovalHandler,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		roomRepo:        roomRepo,
		directory:       directory,
		approvals:       approvals,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute применяет решение в одной сериализуемой транзакции.
// При approve и change публикуется RoomRequestApproved, субаренда создается в той же транзакции.
// Любая ошибка откатывает решение целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideRoomRequest: actor=%d, appointment=%d, action=%s, newRoom=%d",
		req.ActorID, req.AppointmentID, req.Action, ptr.Value(req.NewRoomID))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DecideRoomRequest: validation failed: %v", err)
		uc.metrics.IncRoomDecision(string(req.Action), resultLabel(err))
		return nil, err
	}

	var resp Response
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Права проверяются до статуса заявки
		currentRoom, clinicID, err := uc.requestClinic(txCtx, appointment)
		if err != nil {
			return err
		}

		if err := uc.authorize(txCtx, req.ActorID, clinicID); err != nil {
			return err
		}

		if !appointment.Room.IsPending() {
			return ErrRequestNotPending
		}

		targetRoom := currentRoom
		if req.Action == domain.RoomActionChange {
			targetRoom, err = uc.loadNewRoom(txCtx, currentRoom, *req.NewRoomID)
			if err != nil {
				return err
			}
		}

		next, err := appointment.Room.Apply(req.Action, targetRoom.ID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRoomRequestNotPending):
				return ErrRequestNotPending
			case errors.Is(err, domain.ErrInvalidNewRoom):
				return fmt.Errorf("%w: %v", ErrInvalidNewRoom, err)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.UpdateRoomAssignment(txCtx, appointment.ID, next); err != nil {
			if errors.Is(err, appointmentRepo.ErrRoomRequestNotPending) {
				return ErrRequestNotPending
			}
			return fmt.Errorf("%w: failed to update room assignment: %v", ErrInternal, err)
		}
		appointment.Room = next

		if next.IsApproved() {
			sublease, err := uc.approvals.HandleRoomRequestApproved(txCtx, domain.RoomRequestApproved{
				AppointmentID:   appointment.ID,
				RoomID:          targetRoom.ID,
				RoomClinicID:    targetRoom.ClinicID,
				PsychologistID:  appointment.PsychologistID,
				PatientID:       appointment.PatientID,
				AppointmentDate: appointment.Date,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to handle approval: %v", ErrInternal, err)
			}
			resp.Sublease = sublease
		}

		resp.Appointment = appointment
		return nil
	})

	uc.metrics.IncRoomDecision(string(req.Action), resultLabel(err))

	if err != nil {
		switch {
		case isUseCaseError(err):
			uc.logger.Warn("DecideRoomRequest: appointment=%d, action=%s rejected: %v", req.AppointmentID, req.Action, err)
			return nil, err
		case errors.Is(err, ErrInternal), errors.Is(err, ErrDirectoryUnavailable):
			uc.logger.Error("DecideRoomRequest: appointment=%d, action=%s failed: %v", req.AppointmentID, req.Action, err)
			return nil, err
		}
		// ошибки начала или коммита транзакции
		uc.logger.Error("DecideRoomRequest: appointment=%d, action=%s transaction failed: %v", req.AppointmentID, req.Action, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	roomID, _ := resp.Appointment.Room.RoomID()
	uc.logger.Info("DecideRoomRequest: appointment=%d, action=%s, room=%d, sublease=%t",
		req.AppointmentID, req.Action, roomID, resp.Sublease != nil)
	return &resp, nil
}

// authorize проверяет, что пользователь сотрудник клиники комнаты
func (uc *UseCase) authorize(ctx context.Context, actorID, clinicID int64) error {
	clinic, err := uc.directory.GetClinic(ctx, clinicID)
	if err != nil {
		if errors.Is(err, directoryservice.ErrClinicNotFound) {
			return fmt.Errorf("%w: clinic id=%d of room not found", ErrInternal, clinicID)
		}
		return fmt.Errorf("%w: failed to get clinic id=%d: %v", ErrDirectoryUnavailable, clinicID, err)
	}

	if !clinic.IsStaff(actorID) {
		return ErrForbidden
	}
	return nil
}

// requestClinic возвращает текущую комнату записи и клинику, сотрудники которой решают заявку.
// Без комнаты используется клиника записи, без клиники доступ запрещен.
func (uc *UseCase) requestClinic(ctx context.Context, appointment *domain.Appointment) (*domain.Room, int64, error) {
	roomID, ok := appointment.Room.RoomID()
	if !ok {
		if appointment.ClinicID == nil {
			return nil, 0, ErrForbidden
		}
		return nil, *appointment.ClinicID, nil
	}

	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to get room id=%d: %v", ErrInternal, roomID, err)
	}
	return room, room.ClinicID, nil
}

// loadNewRoom проверяет комнату для change: существует, активна, другая, из той же клиники
func (uc *UseCase) loadNewRoom(ctx context.Context, current *domain.Room, newRoomID int64) (*domain.Room, error) {
	if newRoomID == current.ID {
		return nil, fmt.Errorf("%w: room id=%d is already requested", ErrInvalidNewRoom, newRoomID)
	}

	room, err := uc.roomRepo.GetByID(ctx, newRoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, fmt.Errorf("%w: room id=%d not found", ErrInvalidNewRoom, newRoomID)
		}
		return nil, fmt.Errorf("%w: failed to get room id=%d: %v", ErrInternal, newRoomID, err)
	}

	if !room.IsActive {
		return nil, fmt.Errorf("%w: room id=%d is inactive", ErrInvalidNewRoom, newRoomID)
	}

	if room.ClinicID != current.ClinicID {
		return nil, fmt.Errorf("%w: room id=%d belongs to another clinic", ErrInvalidNewRoom, newRoomID)
	}

	return room, nil
}

func isUseCaseError(err error) bool {
	return errors.Is(err, ErrAppointmentNotFound) ||
		errors.Is(err, ErrRequestNotPending) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidNewRoom) ||
		errors.Is(err, ErrInvalidInput)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRequestNotPending):
		return "not_pending"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrAppointmentNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidNewRoom), errors.Is(err, ErrInvalidInput):
		return "invalid"
	}
	return "error"
}
