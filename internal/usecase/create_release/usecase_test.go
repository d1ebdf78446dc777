package create_release

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
)

type fakeDeskRepo struct {
	desks map[int64]*domain.Desk
}

func (f *fakeDeskRepo) GetByID(_ context.Context, id int64) (*domain.Desk, error) {
	d, ok := f.desks[id]
	if !ok {
		return nil, deskRepo.ErrDeskNotFound
	}
	return d, nil
}

// fakeReleaseRepo повторяет идемпотентность хранилища: повторное создание
// для той же пары (стол, дата) возвращает существующий release
type fakeReleaseRepo struct {
	releases map[string]*domain.DeskRelease
	nextID   int64
}

func (f *fakeReleaseRepo) Create(_ context.Context, deskID int64, date time.Time) (*domain.DeskRelease, error) {
	key := date.Format(domain.DateFormat)
	if existing, ok := f.releases[key]; ok && existing.DeskID == deskID {
		return existing, nil
	}
	f.nextID++
	rel := &domain.DeskRelease{
		ID:          f.nextID,
		DeskID:      deskID,
		ReleaseDate: date,
		CreatedAt:   time.Now(),
	}
	f.releases[key] = rel
	return rel, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func newUseCaseWithDesk(desk *domain.Desk) (*UseCase, *fakeReleaseRepo) {
	desks := &fakeDeskRepo{desks: map[int64]*domain.Desk{}}
	if desk != nil {
		desks.desks[desk.ID] = desk
	}
	releases := &fakeReleaseRepo{releases: map[string]*domain.DeskRelease{}}
	return NewUseCase(desks, releases, &fakeTxManager{}, nopLogger{}), releases
}

func TestExecute_Success(t *testing.T) {
	owner := uuid.New()
	uc, _ := newUseCaseWithDesk(&domain.Desk{ID: 2, OfficeID: 1, Label: "A-02", ReservedFor: &owner})

	resp, err := uc.Execute(context.Background(), &Request{DeskID: 2, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.DeskID)
	assert.True(t, resp.ReleaseDate.Equal(testDate))
}

func TestExecute_Idempotent(t *testing.T) {
	owner := uuid.New()
	uc, _ := newUseCaseWithDesk(&domain.Desk{ID: 2, OfficeID: 1, Label: "A-02", ReservedFor: &owner})

	first, err := uc.Execute(context.Background(), &Request{DeskID: 2, Date: testDate})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{DeskID: 2, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestExecute_NormalizesDate(t *testing.T) {
	owner := uuid.New()
	uc, releases := newUseCaseWithDesk(&domain.Desk{ID: 2, OfficeID: 1, Label: "A-02", ReservedFor: &owner})

	loc := time.FixedZone("UTC+7", 7*60*60)
	_, err := uc.Execute(context.Background(), &Request{
		DeskID: 2,
		Date:   time.Date(2025, 1, 6, 20, 15, 0, 0, loc),
	})
	require.NoError(t, err)

	_, ok := releases.releases["2025-01-06"]
	assert.True(t, ok)
}

func TestExecute_DeskNotFound(t *testing.T) {
	uc, _ := newUseCaseWithDesk(nil)

	_, err := uc.Execute(context.Background(), &Request{DeskID: 42, Date: testDate})

	assert.ErrorIs(t, err, ErrDeskNotFound)
}

func TestExecute_DeskNotReserved(t *testing.T) {
	uc, _ := newUseCaseWithDesk(&domain.Desk{ID: 3, OfficeID: 1, Label: "A-03"})

	_, err := uc.Execute(context.Background(), &Request{DeskID: 3, Date: testDate})

	assert.ErrorIs(t, err, ErrDeskNotReserved)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newUseCaseWithDesk(nil)

	_, err := uc.Execute(context.Background(), &Request{DeskID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DeskID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
