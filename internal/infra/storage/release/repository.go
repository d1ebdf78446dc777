package release

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

var releaseColumns = []string{
	"id",
	"desk_id",
	"release_date",
	"created_at",
}

// Repository репозиторий для работы с desk releases -
// однодневными исключениями из постоянного закрепления стола
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория releases
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает release идемпотентно: при повторном вызове для той же пары
// (desk_id, release_date) возвращает существующую строку без ошибки.
// Уникальный индекс по (desk_id, release_date) + ON CONFLICT DO NOTHING
// гарантируют не больше одной строки на пару даже при конкурентных вызовах.
func (r *Repository) Create(ctx context.Context, deskID int64, date time.Time) (*domain.DeskRelease, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("desk_releases").
		Columns("desk_id", "release_date").
		Values(deskID, date).
		Suffix("ON CONFLICT (desk_id, release_date) DO NOTHING RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	rel := &domain.DeskRelease{
		DeskID:      deskID,
		ReleaseDate: date,
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rel.ID, &createdAt)
	if err == sql.ErrNoRows {
		// Конфликт: строка уже существует, возвращаем её
		return r.GetByDeskAndDate(ctx, deskID, date)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rel.CreatedAt = createdAt.Time
	return rel, nil
}

// GetByDeskAndDate получает release для пары (стол, дата)
func (r *Repository) GetByDeskAndDate(ctx context.Context, deskID int64, date time.Time) (*domain.DeskRelease, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(releaseColumns...).
		From("desk_releases").
		Where(squirrel.Eq{"desk_id": deskID}).
		Where(squirrel.Eq{"release_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDeskAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var rel domain.DeskRelease
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rel.ID,
		&rel.DeskID,
		&rel.ReleaseDate,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReleaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDeskAndDate - scan release: %v", ErrScanRow, err)
	}

	rel.CreatedAt = createdAt.Time
	return &rel, nil
}

// Exists проверяет, существует ли release для пары (стол, дата).
// Это и есть ответ на вопрос "освобожден ли стол на эту дату".
func (r *Repository) Exists(ctx context.Context, deskID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("desk_releases").
		Where(squirrel.Eq{"desk_id": deskID}).
		Where(squirrel.Eq{"release_date": date}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListUpcoming получает releases стола с датой не раньше from,
// отсортированные по дате по возрастанию
func (r *Repository) ListUpcoming(ctx context.Context, deskID int64, from time.Time) ([]*domain.DeskRelease, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(releaseColumns...).
		From("desk_releases").
		Where(squirrel.Eq{"desk_id": deskID}).
		Where(squirrel.GtOrEq{"release_date": from}).
		OrderBy("release_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	releases := make([]*domain.DeskRelease, 0)
	for rows.Next() {
		var rel domain.DeskRelease
		var createdAt sql.NullTime

		if err := rows.Scan(&rel.ID, &rel.DeskID, &rel.ReleaseDate, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListUpcoming - scan row: %v", ErrScanRow, err)
		}

		rel.CreatedAt = createdAt.Time
		releases = append(releases, &rel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - rows error: %v", ErrScanRow, err)
	}

	return releases, nil
}

// Delete удаляет release для пары (стол, дата), восстанавливая закрепление
// стола на этот день. Возвращает ErrReleaseNotFound, если строки не было.
func (r *Repository) Delete(ctx context.Context, deskID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("desk_releases").
		Where(squirrel.Eq{"desk_id": deskID}).
		Where(squirrel.Eq{"release_date": date}).
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
		return ErrReleaseNotFound
	}

	return nil
}

// DeleteByDeskID удаляет все releases стола.
// Используется при каскадном удалении стола.
func (r *Repository) DeleteByDeskID(ctx context.Context, deskID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("desk_releases").
		Where(squirrel.Eq{"desk_id": deskID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDeskID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByDeskID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
