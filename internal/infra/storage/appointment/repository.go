package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

var columns = []string{
	"a.id",
	"a.patient_id",
	"a.psychologist_id",
	"a.clinic_id",
	"a.appointment_date",
	"a.duration_minutes",
	"a.type",
	"a.status",
	"a.notes",
	"a.session_value",
	"a.room_id",
	"a.room_status",
	"a.created_at",
	"a.updated_at",
}

// RoomRequestsFilter фильтр запросов комнат клиники
type RoomRequestsFilter struct {
	ClinicID   int64
	RoomStatus domain.RoomStatus
}

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	roomID, roomStatus := appointment.Room.Columns()

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"patient_id",
			"psychologist_id",
			"clinic_id",
			"appointment_date",
			"duration_minutes",
			"type",
			"status",
			"notes",
			"session_value",
			"room_id",
			"room_status",
		).
		Values(
			appointment.PatientID,
			appointment.PsychologistID,
			appointment.ClinicID,
			appointment.Date,
			appointment.DurationMinutes,
			appointment.Type,
			appointment.Status,
			appointment.Notes,
			appointment.SessionValue,
			roomID,
			roomStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, insertError(err)
	}

	return appointment, nil
}

// insertError переводит ошибки PostgreSQL при вставке в ошибки репозитория
func insertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case foreignKeyViolation:
			return ErrRoomReference
		case checkViolation:
			return fmt.Errorf("%w: %s", ErrConstraintViolation, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
}

// GetByID получает запись по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("appointments a").
		Where(squirrel.Eq{"a.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %v", ErrScanRow, err)
	}

	return appointment, nil
}

// ListRoomRequests получает записи, запросившие комнаты клиники, по дате
func (r *Repository) ListRoomRequests(ctx context.Context, filter RoomRequestsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := roomRequestsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRoomRequests - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRoomRequests - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRoomRequests - %v", ErrScanRow, err)
		}
		result = append(result, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRoomRequests - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func roomRequestsQuery(filter RoomRequestsFilter) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From("appointments a").
		Join("rooms r ON r.id = a.room_id").
		Where(squirrel.Eq{"r.clinic_id": filter.ClinicID}).
		Where(squirrel.Eq{"a.room_status": filter.RoomStatus}).
		OrderBy("a.appointment_date ASC", "a.id ASC")
}

// UpdateRoomAssignment сохраняет решение по запросу комнаты.
// Обновление выполняется только пока запрос в статусе pending, иначе ErrRoomRequestNotPending.
func (r *Repository) UpdateRoomAssignment(ctx context.Context, id int64, assignment domain.RoomAssignment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	roomID, roomStatus := assignment.Columns()

	query, args, err := psqlbuilder.Update("appointments").
		Set("room_id", roomID).
		Set("room_status", roomStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"room_status": domain.RoomStatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRoomAssignment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRoomAssignment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRoomAssignment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomRequestNotPending
	}

	return nil
}

// UpdateStatus обновляет статус записи, пока она не в терминальном статусе
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": []string{string(domain.StatusCompleted), string(domain.StatusCancelled)}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusNotUpdated
	}

	return nil
}

// HasRoomReferences проверяет, ссылается ли на комнату хоть одна запись или субаренда
func (r *Repository) HasRoomReferences(ctx context.Context, roomID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr(
			"EXISTS (SELECT 1 FROM appointments WHERE room_id = ?) OR EXISTS (SELECT 1 FROM subleases WHERE room_id = ?)",
			roomID, roomID,
		)).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasRoomReferences - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasRoomReferences - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a          domain.Appointment
		roomID     *int64
		roomStatus *domain.RoomStatus
	)

	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.PsychologistID,
		&a.ClinicID,
		&a.Date,
		&a.DurationMinutes,
		&a.Type,
		&a.Status,
		&a.Notes,
		&a.SessionValue,
		&roomID,
		&roomStatus,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Room, err = domain.RestoreRoomAssignment(roomID, roomStatus)
	if err != nil {
		return nil, err
	}

	return &a, nil
}
