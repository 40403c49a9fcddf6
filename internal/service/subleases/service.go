package subleases

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	roomRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/room"
	subleaseRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/sublease"
	directoryClient "github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases/models"
)

// Service реестр субаренд: начисление, оплата, отчеты
type Service struct {
	subleaseRepo SubleaseRepository
	roomRepo     RoomRepository
	directory    DirectoryClient
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса субаренд
func NewService(
	subleaseRepo SubleaseRepository,
	roomRepo RoomRepository,
	directory DirectoryClient,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		subleaseRepo: subleaseRepo,
		roomRepo:     roomRepo,
		directory:    directory,
		metrics:      metrics,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// HandleRoomRequestApproved начисляет субаренду после одобрения комнаты.
// Вызывается внутри транзакции решения, ошибка откатывает решение целиком.
// Возвращает nil, если плата не применяется.
func (s *Service) HandleRoomRequestApproved(ctx context.Context, event domain.RoomRequestApproved) (*domain.Sublease, error) {
	s.logger.Info("HandleRoomRequestApproved: appointment=%d, room=%d, patient=%d",
		event.AppointmentID, event.RoomID, event.PatientID)

	room, err := s.roomRepo.GetByID(ctx, event.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("HandleRoomRequestApproved: room id=%d not found", event.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("HandleRoomRequestApproved: repository error for room id=%d: %v", event.RoomID, err)
		return nil, fmt.Errorf("%w: HandleRoomRequestApproved - repository error: %v", ErrInternal, err)
	}

	if !room.HasSubleaseFee() {
		s.logger.Info("HandleRoomRequestApproved: room id=%d has no sublease fee", room.ID)
		return nil, nil
	}

	patient, err := s.directory.GetPatient(ctx, event.PatientID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrPatientNotFound) {
			s.logger.Warn("HandleRoomRequestApproved: patient id=%d not found", event.PatientID)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("HandleRoomRequestApproved: failed to get patient id=%d: %v", event.PatientID, err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	if !domain.SubleaseApplies(room, patient.ClinicID, event.RoomClinicID) {
		s.logger.Info("HandleRoomRequestApproved: sublease does not apply for appointment=%d", event.AppointmentID)
		return nil, nil
	}

	created, err := s.subleaseRepo.Create(ctx, &domain.Sublease{
		RoomID:          room.ID,
		ClinicID:        event.RoomClinicID,
		AppointmentID:   event.AppointmentID,
		PsychologistID:  event.PsychologistID,
		PatientID:       event.PatientID,
		AppointmentDate: event.AppointmentDate,
		Value:           room.SubleasePrice.Decimal,
		Status:          domain.SubleaseStatusPending,
	})
	if err != nil {
		if errors.Is(err, subleaseRepo.ErrSubleaseExists) {
			s.logger.Warn("HandleRoomRequestApproved: sublease for appointment=%d already exists", event.AppointmentID)
			return nil, ErrSubleaseExists
		}
		s.logger.Error("HandleRoomRequestApproved: repository error for appointment=%d: %v", event.AppointmentID, err)
		return nil, fmt.Errorf("%w: HandleRoomRequestApproved - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncSubleaseCreated()
	s.logger.Info("HandleRoomRequestApproved: created sublease id=%d, value=%s for appointment=%d",
		created.ID, created.Value.StringFixed(2), event.AppointmentID)
	return created, nil
}

// MarkPaid отмечает субаренду оплаченной
// Доступно только сотрудникам клиники, которой принадлежит комната
func (s *Service) MarkPaid(ctx context.Context, actorID, subleaseID int64) (*models.SubleaseResponse, error) {
	s.logger.Info("MarkPaid: sublease id=%d by user=%d", subleaseID, actorID)

	if subleaseID <= 0 {
		return nil, fmt.Errorf("%w: subleaseId must be positive", ErrInvalidInput)
	}

	sublease, err := s.subleaseRepo.GetByID(ctx, subleaseID)
	if err != nil {
		if errors.Is(err, subleaseRepo.ErrSubleaseNotFound) {
			s.logger.Warn("MarkPaid: sublease id=%d not found", subleaseID)
			return nil, ErrSubleaseNotFound
		}
		s.logger.Error("MarkPaid: repository error for sublease id=%d: %v", subleaseID, err)
		return nil, fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	if err := s.checkStaffAccess(ctx, sublease.ClinicID, actorID); err != nil {
		return nil, err
	}

	if !sublease.CanBeMarkedPaid() {
		s.logger.Warn("MarkPaid: sublease id=%d cannot be marked paid, status=%s", subleaseID, sublease.Status)
		return nil, ErrCannotMarkPaid
	}

	paidAt := s.timeProvider.Now()
	if err := s.subleaseRepo.MarkPaid(ctx, subleaseID, paidAt); err != nil {
		switch {
		case errors.Is(err, subleaseRepo.ErrNotPending):
			s.logger.Warn("MarkPaid: sublease id=%d changed status concurrently", subleaseID)
			return nil, ErrCannotMarkPaid
		case errors.Is(err, subleaseRepo.ErrSubleaseNotFound):
			return nil, ErrSubleaseNotFound
		}
		s.logger.Error("MarkPaid: repository error for sublease id=%d: %v", subleaseID, err)
		return nil, fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	sublease.Status = domain.SubleaseStatusPaid
	sublease.PaidAt = &paidAt
	sublease.UpdatedAt = paidAt

	s.metrics.IncSubleasePaid()
	s.logger.Info("MarkPaid: sublease id=%d marked paid", subleaseID)
	return models.FromDomainSublease(sublease), nil
}

// List возвращает страницу субаренд клиники, новые первыми
// Доступно только сотрудникам клиники
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.SubleaseListResponse, error) {
	s.logger.Info("List: fetching subleases for clinic=%d by user=%d, page=%d, perPage=%d",
		req.ClinicID, req.ActorID, req.Page, req.PerPage)

	if req.ClinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicId must be positive", ErrInvalidInput)
	}
	page, perPage, err := normalizePage(req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}
	status, err := validateStatus(req.Status)
	if err != nil {
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, req.ClinicID, req.ActorID); err != nil {
		return nil, err
	}

	items, total, err := s.subleaseRepo.List(ctx, domain.SubleaseFilter{
		ClinicID: req.ClinicID,
		Status:   status,
		Limit:    uint64(perPage),
		Offset:   uint64((page - 1) * perPage),
	})
	if err != nil {
		s.logger.Error("List: repository error for clinic=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d subleases for clinic=%d", len(items), total, req.ClinicID)
	return models.FromDomainSubleaseList(items, total, page, perPage), nil
}

// ClinicSummary возвращает сводку субаренд клиники за период
// Доступно только сотрудникам клиники
func (s *Service) ClinicSummary(ctx context.Context, clinicID int64, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	s.logger.Info("ClinicSummary: clinic=%d by user=%d", clinicID, req.ActorID)

	if clinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicId must be positive", ErrInvalidInput)
	}
	from, to, err := summaryRange(s.timeProvider.Now(), req.From, req.To)
	if err != nil {
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, clinicID, req.ActorID); err != nil {
		return nil, err
	}

	return s.summary(ctx, "ClinicSummary", domain.SubleaseSummaryFilter{ClinicID: &clinicID, From: from, To: to})
}

// PsychologistSummary возвращает сводку субаренд психолога за период
// Психолог видит только свою сводку
func (s *Service) PsychologistSummary(ctx context.Context, psychologistID int64, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	s.logger.Info("PsychologistSummary: psychologist=%d by user=%d", psychologistID, req.ActorID)

	if psychologistID <= 0 {
		return nil, fmt.Errorf("%w: psychologistId must be positive", ErrInvalidInput)
	}
	from, to, err := summaryRange(s.timeProvider.Now(), req.From, req.To)
	if err != nil {
		return nil, err
	}

	if req.ActorID != psychologistID {
		s.logger.Warn("PsychologistSummary: user=%d cannot view summary of psychologist=%d", req.ActorID, psychologistID)
		return nil, ErrAccessDenied
	}

	return s.summary(ctx, "PsychologistSummary", domain.SubleaseSummaryFilter{PsychologistID: &psychologistID, From: from, To: to})
}

// CancelByAppointment отменяет ожидающую оплаты субаренду отмененной записи
func (s *Service) CancelByAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	s.logger.Info("CancelByAppointment: appointment=%d", appointmentID)

	cancelled, err := s.subleaseRepo.CancelByAppointment(ctx, appointmentID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("CancelByAppointment: repository error for appointment=%d: %v", appointmentID, err)
		return false, fmt.Errorf("%w: CancelByAppointment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelByAppointment: appointment=%d, cancelled=%t", appointmentID, cancelled)
	return cancelled, nil
}

// Вспомогательные методы

func (s *Service) summary(ctx context.Context, op string, filter domain.SubleaseSummaryFilter) (*models.SummaryResponse, error) {
	summary, err := s.subleaseRepo.Summary(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: pending=%d, paid=%d, cancelled=%d", op, summary.PendingCount, summary.PaidCount, summary.CancelledCount)
	return models.FromDomainSummary(summary, filter), nil
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
