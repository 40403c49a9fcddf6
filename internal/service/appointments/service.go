package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/appointment"
	directoryClient "github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/appointments/models"
)

// Options настройки сервиса записей
type Options struct {
	// CascadeCancellation отменяет ожидающую субаренду вместе с записью
	CascadeCancellation bool
}

// Service сервис чтения записей и внешних изменений статуса
type Service struct {
	appointmentRepo AppointmentRepository
	directory       DirectoryClient
	subleases       SubleaseCanceller
	txManager       TransactionManager
	opts            Options
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	directory DirectoryClient,
	subleases SubleaseCanceller,
	txManager TransactionManager,
	opts Options,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		subleases:       subleases,
		txManager:       txManager,
		opts:            opts,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Доступно пациенту, психологу и сотрудникам клиники записи
func (s *Service) GetByID(ctx context.Context, id, actorID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, actorID)

	appointment, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkParticipantAccess(ctx, appointment, actorID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", actorID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// ListRoomRequests возвращает записи, запросившие комнаты клиники
// Доступно только сотрудникам клиники, по умолчанию только ожидающие решения
func (s *Service) ListRoomRequests(ctx context.Context, req *models.ListRoomRequestsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListRoomRequests: clinic=%d by user=%d, status=%v", req.ClinicID, req.ActorID, req.Status)

	if req.ClinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicId must be positive", ErrInvalidInput)
	}

	status := domain.RoomStatusPending
	if req.Status != nil && *req.Status != "" {
		status = domain.RoomStatus(*req.Status)
		// отклоненные запросы не хранят комнату и не привязаны к клинике
		if status != domain.RoomStatusPending && status != domain.RoomStatusApproved {
			s.logger.Warn("ListRoomRequests: unsupported status=%s", *req.Status)
			return nil, fmt.Errorf("%w: status must be pending or approved", ErrInvalidInput)
		}
	}

	if err := s.checkStaffAccess(ctx, req.ClinicID, req.ActorID); err != nil {
		return nil, err
	}

	items, err := s.appointmentRepo.ListRoomRequests(ctx, appointmentRepo.RoomRequestsFilter{
		ClinicID:   req.ClinicID,
		RoomStatus: status,
	})
	if err != nil {
		s.logger.Error("ListRoomRequests: repository error for clinic=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: ListRoomRequests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRoomRequests: fetched %d requests for clinic=%d", len(items), req.ClinicID)
	return models.FromDomainAppointmentList(items), nil
}

// UpdateStatus применяет внешнее изменение статуса (подтверждение, отмена, завершение)
// Завершенные и отмененные записи не меняются
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d to status=%s by user=%d", id, req.Status, req.ActorID)

	status := domain.AppointmentStatus(req.Status)
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointment, err := s.getAppointment(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkParticipantAccess(ctx, appointment, req.ActorID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d to appointment id=%d", req.ActorID, id)
		return nil, err
	}

	if !appointment.CanChangeStatus() {
		s.logger.Warn("UpdateStatus: appointment id=%d is in final status=%s", id, appointment.Status)
		return nil, ErrTerminalStatus
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
			return err
		}

		if status == domain.StatusCancelled && s.opts.CascadeCancellation {
			if _, err := s.subleases.CancelByAppointment(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrStatusNotUpdated):
			s.logger.Warn("UpdateStatus: appointment id=%d reached final status concurrently", id)
			return nil, ErrTerminalStatus
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appointment.Status = status

	s.logger.Info("UpdateStatus: appointment id=%d moved to status=%s", id, status)
	return models.FromDomainAppointment(appointment), nil
}

// Вспомогательные методы

func (s *Service) getAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointmentId must be positive", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appointment, nil
}

// checkParticipantAccess пропускает пациента и психолога записи, остальных проверяет как сотрудников клиники
func (s *Service) checkParticipantAccess(ctx context.Context, appointment *domain.Appointment, actorID int64) error {
	if appointment.PatientID == actorID || appointment.PsychologistID == actorID {
		return nil
	}

	if appointment.ClinicID == nil {
		return ErrAccessDenied
	}

	if err := s.checkStaffAccess(ctx, *appointment.ClinicID, actorID); err != nil {
		if errors.Is(err, ErrClinicNotFound) {
			return ErrAccessDenied
		}
		return err
	}

	return nil
}

// checkStaffAccess проверяет, что пользователь является сотрудником клиники
func (s *Service) checkStaffAccess(ctx context.Context, clinicID, userID int64) error {
	clinic, err := s.directory.GetClinic(ctx, clinicID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrClinicNotFound) {
			s.logger.Warn("checkStaffAccess: clinic id=%d not found", clinicID)
			return ErrClinicNotFound
		}
		s.logger.Error("checkStaffAccess: failed to get clinic id=%d: %v", clinicID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get clinic: %v", ErrDirectoryUnavailable, err)
	}

	if !clinic.IsStaff(userID) {
		s.logger.Warn("checkStaffAccess: user=%d is not staff of clinic=%d", userID, clinicID)
		return ErrAccessDenied
	}

	return nil
}
