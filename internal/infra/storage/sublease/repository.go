package sublease

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

var columns = []string{
	"id",
	"room_id",
	"clinic_id",
	"appointment_id",
	"psychologist_id",
	"patient_id",
	"appointment_date",
	"value",
	"status",
	"paid_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с субарендой комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория субаренды
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает субаренду. Для одной записи допускается только одна субаренда.
func (r *Repository) Create(ctx context.Context, s *domain.Sublease) (*domain.Sublease, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("subleases").
		Columns(
			"room_id",
			"clinic_id",
			"appointment_id",
			"psychologist_id",
			"patient_id",
			"appointment_date",
			"value",
			"status",
		).
		Values(
			s.RoomID,
			s.ClinicID,
			s.AppointmentID,
			s.PsychologistID,
			s.PatientID,
			s.AppointmentDate,
			s.Value,
			s.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSubleaseExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает субаренду по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Sublease, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("subleases").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSublease(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubleaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %v", ErrScanRow, err)
	}

	return s, nil
}

// MarkPaid переводит субаренду pending → paid
func (r *Repository) MarkPaid(ctx context.Context, id int64, paidAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("subleases").
		Set("status", domain.SubleaseStatusPaid).
		Set("paid_at", paidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.SubleaseStatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	affected, err := execAffected(ctx, executor, "MarkPaid", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotPending
	}

	return nil
}

// CancelByAppointment отменяет ожидающую оплаты субаренду записи.
// Возвращает false, если отменять было нечего.
func (r *Repository) CancelByAppointment(ctx context.Context, appointmentID int64, cancelledAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("subleases").
		Set("status", domain.SubleaseStatusCancelled).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		Where(squirrel.Eq{"status": domain.SubleaseStatusPending}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CancelByAppointment - build update query: %v", ErrBuildQuery, err)
	}

	affected, err := execAffected(ctx, executor, "CancelByAppointment", query, args)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// List получает страницу субаренд клиники (новые первыми) и общее количество
func (r *Repository) List(ctx context.Context, filter domain.SubleaseFilter) ([]*domain.Sublease, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := listWhere(filter)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("subleases").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	query, args, err := psqlbuilder.Select(columns...).
		From("subleases").
		Where(where).
		OrderBy("appointment_date DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Sublease, 0)
	for rows.Next() {
		s, err := scanSublease(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - %v", ErrScanRow, err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, total, nil
}

func listWhere(filter domain.SubleaseFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"clinic_id": filter.ClinicID}}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": *filter.Status})
	}
	return where
}

// Summary суммирует субаренды по статусам за период
func (r *Repository) Summary(ctx context.Context, filter domain.SubleaseSummaryFilter) (*domain.SubleaseSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := summaryQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Summary - build select query: %v", ErrBuildQuery, err)
	}

	var summary domain.SubleaseSummary
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&summary.PendingTotal,
		&summary.PendingCount,
		&summary.PaidTotal,
		&summary.PaidCount,
		&summary.CancelledTotal,
		&summary.CancelledCount,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Summary - scan: %v", ErrScanRow, err)
	}

	return &summary, nil
}

func summaryQuery(filter domain.SubleaseSummaryFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(
		"COALESCE(SUM(value) FILTER (WHERE status = 'pending'), 0)",
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COALESCE(SUM(value) FILTER (WHERE status = 'paid'), 0)",
		"COUNT(*) FILTER (WHERE status = 'paid')",
		"COALESCE(SUM(value) FILTER (WHERE status = 'cancelled'), 0)",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
	).
		From("subleases").
		Where(squirrel.GtOrEq{"appointment_date": filter.From}).
		Where(squirrel.Lt{"appointment_date": filter.To})

	if filter.ClinicID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"clinic_id": *filter.ClinicID})
	}
	if filter.PsychologistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"psychologist_id": *filter.PsychologistID})
	}

	return selectBuilder
}

func execAffected(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) (int64, error) {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSublease(row rowScanner) (*domain.Sublease, error) {
	var s domain.Sublease
	err := row.Scan(
		&s.ID,
		&s.RoomID,
		&s.ClinicID,
		&s.AppointmentID,
		&s.PsychologistID,
		&s.PatientID,
		&s.AppointmentDate,
		&s.Value,
		&s.Status,
		&s.PaidAt,
		&s.CancelledAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
