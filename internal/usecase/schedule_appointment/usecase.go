package schedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/appointment"
	roomRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/room"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// UseCase use case создания записи на прием (одной или серии)
type UseCase struct {
	appointmentRepo AppointmentRepository
	roomRepo        RoomRepository
	directory       DirectoryClient
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	opts            Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	roomRepo RoomRepository,
	directory DirectoryClient,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.SeriesParallelism < 1 {
		opts.SeriesParallelism = 1
	}
	if opts.DefaultDurationMinutes <= 0 {
		opts.DefaultDurationMinutes = domain.DefaultDurationMinutes
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		roomRepo:        roomRepo,
		directory:       directory,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		opts:            opts,
	}
}

// Execute создает запись или серию записей.
// Записи серии создаются независимо: ошибка одной не прерывает остальные.
// Если не создано ни одной записи серии, возвращается результат вместе с ErrSeriesFailed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Result, error) {
	uc.logger.Info("ScheduleAppointment: patient=%d, psychologist=%d, date=%s, type=%s, recurring=%t",
		req.PatientID, req.PsychologistID, req.Date.Format(time.RFC3339), req.Type, req.Recurrence != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("ScheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Психолог определяет клинику записи
	psychologist, err := uc.directory.GetPsychologist(ctx, req.PsychologistID)
	if err != nil {
		if errors.Is(err, directoryservice.ErrPsychologistNotFound) {
			uc.logger.Warn("ScheduleAppointment: psychologist id=%d not found", req.PsychologistID)
			return nil, ErrPsychologistNotFound
		}
		uc.logger.Error("ScheduleAppointment: failed to get psychologist id=%d: %v", req.PsychologistID, err)
		return nil, fmt.Errorf("%w: failed to get psychologist: %v", ErrDirectoryUnavailable, err)
	}

	// 3. Запрос комнаты
	room, err := uc.resolveRoom(ctx, req)
	if err != nil {
		return nil, err
	}

	template := uc.buildAppointment(req, psychologist.ClinicID, room)

	if req.Recurrence == nil {
		return uc.scheduleSingle(ctx, template)
	}
	return uc.scheduleSeries(ctx, template, *req.Recurrence)
}

// resolveRoom возвращает запрос комнаты для очной сессии.
// Для онлайн сессий комната отбрасывается.
func (uc *UseCase) resolveRoom(ctx context.Context, req *Request) (domain.RoomAssignment, error) {
	if req.RoomID == nil {
		return domain.Unassigned(), nil
	}

	if req.Type == domain.TypeOnline {
		uc.logger.Info("ScheduleAppointment: room id=%d dropped for online appointment", *req.RoomID)
		return domain.Unassigned(), nil
	}

	room, err := uc.roomRepo.GetByID(ctx, *req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("ScheduleAppointment: room id=%d not found", *req.RoomID)
			return domain.RoomAssignment{}, ErrRoomNotFound
		}
		uc.logger.Error("ScheduleAppointment: failed to get room id=%d: %v", *req.RoomID, err)
		return domain.RoomAssignment{}, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsActive {
		uc.logger.Warn("ScheduleAppointment: room id=%d is inactive", room.ID)
		return domain.RoomAssignment{}, ErrRoomInactive
	}

	return domain.PendingRoom(room.ID), nil
}

func (uc *UseCase) buildAppointment(req *Request, clinicID *int64, room domain.RoomAssignment) domain.Appointment {
	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.opts.DefaultDurationMinutes
	}

	var sessionValue decimal.NullDecimal
	if req.SessionValue != nil {
		sessionValue = decimal.NewNullDecimal(*req.SessionValue)
	}

	return domain.Appointment{
		PatientID:       req.PatientID,
		PsychologistID:  req.PsychologistID,
		ClinicID:        clinicID,
		Date:            req.Date,
		DurationMinutes: duration,
		Type:            req.Type,
		Status:          domain.StatusScheduled,
		Notes:           req.Notes,
		SessionValue:    sessionValue,
		Room:            room,
	}
}

func (uc *UseCase) scheduleSingle(ctx context.Context, template domain.Appointment) (*Result, error) {
	appointment := template
	created, err := uc.appointmentRepo.Create(ctx, &appointment)
	if err != nil {
		uc.logger.Error("ScheduleAppointment: failed to create appointment: %v", err)
		uc.metrics.IncAppointmentsScheduled(string(ModeSingle), string(OutcomeFailed))
		return nil, createError(err)
	}

	uc.logger.Info("ScheduleAppointment: created appointment id=%d", created.ID)
	uc.metrics.IncAppointmentsScheduled(string(ModeSingle), string(OutcomeSuccess))

	return &Result{
		Mode:         ModeSingle,
		Outcome:      OutcomeSuccess,
		Succeeded:    1,
		Appointments: []*domain.Appointment{created},
	}, nil
}

// createError переводит ошибку сохранения записи в ошибку usecase
func createError(err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrRoomReference):
		return fmt.Errorf("%w: room was removed before the appointment was saved", ErrRoomNotFound)
	case errors.Is(err, appointmentRepo.ErrConstraintViolation):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %v", ErrCreateFailed, err)
}

func (uc *UseCase) scheduleSeries(ctx context.Context, template domain.Appointment, recurrence domain.Recurrence) (*Result, error) {
	dates, err := domain.ExpandSeries(template.Date, recurrence.Frequency, recurrence.OccurrenceCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created := uc.submitAll(ctx, template, dates)

	result := &Result{Mode: ModeRecurring, Appointments: make([]*domain.Appointment, 0, len(dates))}
	for _, a := range created {
		if a == nil {
			result.Failed++
			continue
		}
		result.Succeeded++
		result.Appointments = append(result.Appointments, a)
	}

	switch {
	case result.Succeeded == 0:
		result.Outcome = OutcomeFailed
	case result.Failed > 0:
		result.Outcome = OutcomePartial
	default:
		result.Outcome = OutcomeSuccess
	}

	uc.metrics.IncAppointmentsScheduled(string(ModeRecurring), string(result.Outcome))
	uc.logger.Info("ScheduleAppointment: series of %d, succeeded=%d, failed=%d",
		len(dates), result.Succeeded, result.Failed)

	if result.Outcome == OutcomeFailed {
		return result, ErrSeriesFailed
	}
	return result, nil
}

// submitAll создает записи на каждую дату. Элемент результата nil, если запись не создана.
// При SeriesParallelism > 1 записи отправляются параллельно, не более SeriesParallelism одновременно.
func (uc *UseCase) submitAll(ctx context.Context, template domain.Appointment, dates []time.Time) []*domain.Appointment {
	created := make([]*domain.Appointment, len(dates))

	submit := func(k int) {
		appointment := template
		appointment.Date = dates[k]

		a, err := uc.appointmentRepo.Create(ctx, &appointment)
		if err != nil {
			uc.logger.Warn("ScheduleAppointment: occurrence %d/%d at %s failed: %v",
				k+1, len(dates), dates[k].Format(time.RFC3339), err)
			return
		}
		created[k] = a
	}

	if uc.opts.SeriesParallelism == 1 {
		for k := range dates {
			submit(k)
		}
		return created
	}

	var g errgroup.Group
	g.SetLimit(uc.opts.SeriesParallelism)
	for k := range dates {
		k := k
		g.Go(func() error {
			submit(k)
			return nil
		})
	}
	_ = g.Wait()

	return created
}
