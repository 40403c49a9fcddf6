package room

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

var columns = []string{
	"id",
	"clinic_id",
	"name",
	"number",
	"description",
	"capacity",
	"amenities",
	"sublease_price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с комнатами клиник
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает комнату
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"clinic_id",
			"name",
			"number",
			"description",
			"capacity",
			"amenities",
			"sublease_price",
			"is_active",
		).
		Values(
			room.ClinicID,
			room.Name,
			room.Number,
			room.Description,
			room.Capacity,
			pq.Array(amenitiesToStrings(room.Amenities)),
			room.SubleasePrice,
			room.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return room, nil
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %v", ErrScanRow, err)
	}

	return room, nil
}

// ListByClinic получает комнаты клиники, отсортированные по названию.
// Неактивные комнаты возвращаются только при includeInactive.
func (r *Repository) ListByClinic(ctx context.Context, clinicID int64, includeInactive bool) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listByClinicQuery(clinicID, includeInactive).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByClinic - %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

func listByClinicQuery(clinicID int64, includeInactive bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(columns...).
		From("rooms").
		Where(squirrel.Eq{"clinic_id": clinicID})

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	return selectBuilder.OrderBy("name ASC", "id ASC")
}

// Update сохраняет изменяемые поля комнаты
func (r *Repository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("name", room.Name).
		Set("number", room.Number).
		Set("description", room.Description).
		Set("capacity", room.Capacity).
		Set("amenities", pq.Array(amenitiesToStrings(room.Amenities))).
		Set("sublease_price", room.SubleasePrice).
		Set("is_active", room.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return room, nil
}

// Deactivate выключает комнату, не удаляя ее
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "Deactivate", query, args)
}

// Delete удаляет комнату
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "Delete", query, args)
}

func execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room      domain.Room
		amenities []string
	)

	err := row.Scan(
		&room.ID,
		&room.ClinicID,
		&room.Name,
		&room.Number,
		&room.Description,
		&room.Capacity,
		pq.Array(&amenities),
		&room.SubleasePrice,
		&room.IsActive,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.Amenities = make([]domain.Amenity, 0, len(amenities))
	for _, a := range amenities {
		room.Amenities = append(room.Amenities, domain.Amenity(a))
	}

	return &room, nil
}

func amenitiesToStrings(amenities []domain.Amenity) []string {
	result := make([]string, 0, len(amenities))
	for _, a := range amenities {
		result = append(result, string(a))
	}
	return result
}
