package release

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO desk_releases").
		WithArgs(int64(2), testDate).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))

	rel, err := repo.Create(context.Background(), 2, testDate)

	require.NoError(t, err)
	assert.Equal(t, int64(5), rel.ID)
	assert.Equal(t, int64(2), rel.DeskID)
	assert.True(t, rel.ReleaseDate.Equal(testDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ConflictReturnsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	// ON CONFLICT DO NOTHING не возвращает строк, репозиторий перечитывает существующую
	mock.ExpectQuery("INSERT INTO desk_releases").
		WithArgs(int64(2), testDate).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	mock.ExpectQuery("SELECT .+ FROM desk_releases").
		WithArgs(int64(2), testDate).
		WillReturnRows(sqlmock.NewRows(releaseColumns).
			AddRow(int64(5), int64(2), testDate, now))

	rel, err := repo.Create(context.Background(), 2, testDate)

	require.NoError(t, err)
	assert.Equal(t, int64(5), rel.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT 1 FROM desk_releases").
		WithArgs(int64(2), testDate).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	ok, err := repo.Exists(context.Background(), 2, testDate)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExists_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT 1 FROM desk_releases").
		WithArgs(int64(2), testDate).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	ok, err := repo.Exists(context.Background(), 2, testDate)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("DELETE FROM desk_releases").
		WithArgs(int64(2), testDate).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 2, testDate)

	assert.ErrorIs(t, err, ErrReleaseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
