package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	roomRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/room"
	directoryClient "github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms/models"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/money"
)

// Service сервис для работы с комнатами клиник
type Service struct {
	roomRepo        RoomRepository
	appointmentRepo AppointmentRepository
	directory       DirectoryClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	appointmentRepo AppointmentRepository,
	directory DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:        roomRepo,
		appointmentRepo: appointmentRepo,
		directory:       directory,
		txManager:       txManager,
		logger:          logger,
	}
}

// ListByClinic возвращает комнаты клиники, по умолчанию только активные
func (s *Service) ListByClinic(ctx context.Context, clinicID int64, includeInactive bool) (*models.RoomListResponse, error) {
	s.logger.Info("ListByClinic: fetching rooms for clinic=%d, includeInactive=%t", clinicID, includeInactive)

	if clinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicId must be positive", ErrInvalidInput)
	}

	rooms, err := s.roomRepo.ListByClinic(ctx, clinicID, includeInactive)
	if err != nil {
		s.logger.Error("ListByClinic: repository error for clinic=%d: %v", clinicID, err)
		return nil, fmt.Errorf("%w: ListByClinic - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClinic: successfully fetched %d rooms for clinic=%d", len(rooms), clinicID)
	return models.FromDomainRoomList(rooms), nil
}

// Create создает комнату в клинике
// Доступно только сотрудникам клиники
func (s *Service) Create(ctx context.Context, actorID, clinicID int64, in *models.RoomInput) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room for clinic=%d by user=%d", clinicID, actorID)

	if clinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicId must be positive", ErrInvalidInput)
	}
	if err := validateRoomInput(in); err != nil {
		s.logger.Warn("Create: validation failed for clinic=%d: %v", clinicID, err)
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, clinicID, actorID); err != nil {
		return nil, err
	}

	room := &domain.Room{ClinicID: clinicID, IsActive: true}
	applyRoomInput(room, in)

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error for clinic=%d: %v", clinicID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d for clinic=%d", created.ID, clinicID)
	return models.FromDomainRoom(created), nil
}

// Update заменяет данные комнаты
// Доступно только сотрудникам клиники, которой принадлежит комната
func (s *Service) Update(ctx context.Context, actorID, roomID int64, in *models.RoomInput) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d by user=%d", roomID, actorID)

	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}
	if err := validateRoomInput(in); err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", roomID, err)
		return nil, err
	}

	room, err := s.getRoom(ctx, "Update", roomID)
	if err != nil {
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, room.ClinicID, actorID); err != nil {
		return nil, err
	}

	applyRoomInput(room, in)

	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found during update", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", roomID)
	return models.FromDomainRoom(updated), nil
}

// Delete удаляет комнату
// Если на комнату ссылаются записи или субаренды, комната только выключается
func (s *Service) Delete(ctx context.Context, actorID, roomID int64) (*models.DeleteRoomResponse, error) {
	s.logger.Info("Delete: deleting room id=%d by user=%d", roomID, actorID)

	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	room, err := s.getRoom(ctx, "Delete", roomID)
	if err != nil {
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, room.ClinicID, actorID); err != nil {
		return nil, err
	}

	resp := &models.DeleteRoomResponse{RoomID: roomID}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		referenced, err := s.appointmentRepo.HasRoomReferences(ctx, roomID)
		if err != nil {
			return err
		}

		if referenced {
			resp.Deactivated = true
			return s.roomRepo.Deactivate(ctx, roomID)
		}

		resp.Deleted = true
		return s.roomRepo.Delete(ctx, roomID)
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%d not found during delete", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Delete: failed to delete room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room id=%d deleted=%t, deactivated=%t", roomID, resp.Deleted, resp.Deactivated)
	return resp, nil
}

// CheckSubleaseApplicability проверяет, будет ли начислена плата за субаренду
// Результат носит рекомендательный характер, окончательное решение принимается при одобрении комнаты
func (s *Service) CheckSubleaseApplicability(ctx context.Context, roomID, patientID int64, clinicID *int64) (*models.SubleaseApplicabilityResponse, error) {
	s.logger.Info("CheckSubleaseApplicability: room=%d, patient=%d", roomID, patientID)

	if roomID <= 0 || patientID <= 0 {
		return nil, fmt.Errorf("%w: roomId and patientId must be positive", ErrInvalidInput)
	}
	if clinicID != nil && *clinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicId must be positive", ErrInvalidInput)
	}

	room, err := s.getRoom(ctx, "CheckSubleaseApplicability", roomID)
	if err != nil {
		return nil, err
	}

	patient, err := s.directory.GetPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrPatientNotFound) {
			s.logger.Warn("CheckSubleaseApplicability: patient id=%d not found", patientID)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("CheckSubleaseApplicability: failed to get patient id=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	targetClinic := room.ClinicID
	if clinicID != nil {
		targetClinic = *clinicID
	}

	resp := &models.SubleaseApplicabilityResponse{
		RoomID:    roomID,
		PatientID: patientID,
		ClinicID:  targetClinic,
		Applies:   domain.SubleaseApplies(room, patient.ClinicID, targetClinic),
	}
	if resp.Applies {
		resp.Price = money.NullableNumber(room.SubleasePrice)
		resp.PriceDisplay = money.FormatNullable(room.SubleasePrice)
	}

	s.logger.Info("CheckSubleaseApplicability: room=%d, patient=%d, applies=%t", roomID, patientID, resp.Applies)
	return resp, nil
}

// Вспомогательные методы

func (s *Service) getRoom(ctx context.Context, op string, roomID int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, roomID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
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
