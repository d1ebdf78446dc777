package desk

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

var deskColumns = []string{
	"id",
	"office_id",
	"label",
	"desk_type",
	"reserved_for",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со столами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый стол
func (r *Repository) Create(ctx context.Context, d *domain.Desk) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("desks").
		Columns(
			"office_id",
			"label",
			"desk_type",
			"reserved_for",
		).
		Values(
			d.OfficeID,
			d.Label,
			d.Type,
			reservedForValue(d.ReservedFor),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanDeskRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan desk: %v", ErrScanRow, err)
	}

	return d, nil
}

// GetByReservedFor находит стол, постоянно закрепленный за сотрудником.
// По инварианту за сотрудником закреплено не больше одного стола.
// Если закрепленного стола нет, возвращает ErrDeskNotFound.
func (r *Repository) GetByReservedFor(ctx context.Context, staffID uuid.UUID) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"reserved_for": staffID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservedFor - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanDeskRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservedFor - scan desk: %v", ErrScanRow, err)
	}

	return d, nil
}

// ListByOffice получает все столы офиса
func (r *Repository) ListByOffice(ctx context.Context, officeID int64) ([]*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"office_id": officeID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOffice - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOffice - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]*domain.Desk, 0)
	for rows.Next() {
		d, err := scanDesk(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOffice - scan row: %v", ErrScanRow, err)
		}
		desks = append(desks, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOffice - rows error: %v", ErrScanRow, err)
	}

	return desks, nil
}

// UpdateFields поля стола, которые можно изменить.
// ReservedFor обновляется отдельно через SetReservedFor.
type UpdateFields struct {
	Label *string
	Type  *domain.DeskType
}

// Update изменяет атрибуты стола
func (r *Repository) Update(ctx context.Context, id int64, fields UpdateFields) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("desks").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if fields.Label != nil {
		updateBuilder = updateBuilder.Set("label", *fields.Label)
	}
	if fields.Type != nil {
		updateBuilder = updateBuilder.Set("desk_type", *fields.Type)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDeskNotFound
	}

	return nil
}

// SetReservedFor закрепляет стол за сотрудником или снимает закрепление (nil).
// Эффект виден следующему чтению немедленно - движок конфликтов читает
// reserved_for при каждой проверке.
func (r *Repository) SetReservedFor(ctx context.Context, id int64, staffID *uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("desks").
		Set("reserved_for", reservedForValue(staffID)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetReservedFor - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetReservedFor - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetReservedFor - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDeskNotFound
	}

	return nil
}

// Delete удаляет стол. Каскадное удаление бронирований и releases
// выполняет сервис столов в одной транзакции.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDeskNotFound
	}

	return nil
}

// reservedForValue конвертирует *uuid.UUID в значение для БД (NULL если nil)
func reservedForValue(staffID *uuid.UUID) interface{} {
	if staffID == nil {
		return nil
	}
	return *staffID
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeskRow(row *sql.Row) (*domain.Desk, error) {
	return scanDesk(row)
}

func scanDesk(row rowScanner) (*domain.Desk, error) {
	var d domain.Desk
	var reservedFor uuid.NullUUID
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.OfficeID,
		&d.Label,
		&d.Type,
		&reservedFor,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reservedFor.Valid {
		id := reservedFor.UUID
		d.ReservedFor = &id
	}
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}
