package desk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	owner := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO desks").
		WithArgs(int64(1), "A-01", domain.DeskTypeStandard, owner).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(3), now, now))

	created, err := repo.Create(context.Background(), &domain.Desk{
		OfficeID:    1,
		Label:       "A-01",
		Type:        domain.DeskTypeStandard,
		ReservedFor: &owner,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT id, office_id, label, desk_type, reserved_for, created_at, updated_at FROM desks").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(deskColumns).
			AddRow(int64(3), int64(1), "A-01", "standing", nil, now, now))

	desk, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, domain.DeskTypeStanding, desk.Type)
	assert.Nil(t, desk.ReservedFor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT .+ FROM desks").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(deskColumns))

	_, err = repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrDeskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_SetsDeskType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE desks SET updated_at = NOW\\(\\), desk_type = ").
		WithArgs(domain.DeskTypeHighSeat, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deskType := domain.DeskTypeHighSeat
	err = repo.Update(context.Background(), 3, UpdateFields{Type: &deskType})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Каждая колонка, которую читает репозиторий, должна быть объявлена
// в DDL таблицы desks. Расхождение имен ломает все запросы к столам.
func TestDeskColumnsMatchMigration(t *testing.T) {
	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	ddl := string(schema)
	start := strings.Index(ddl, "CREATE TABLE IF NOT EXISTS desks")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(ddl[start:], ";")
	require.Greater(t, end, 0)
	desksDDL := ddl[start : start+end]

	for _, column := range deskColumns {
		assert.Contains(t, desksDDL, column)
	}
}
