package releases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	releaseRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/release"
	createRelease "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_release"
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

// fakeReleaseStore обслуживает и создание через usecase, и чтение/удаление
// через сервис, как один реестр releases
type fakeReleaseStore struct {
	releases map[string]*domain.DeskRelease
	nextID   int64
}

func releaseKey(deskID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", deskID, date.Format(domain.DateFormat))
}

func (f *fakeReleaseStore) Create(_ context.Context, deskID int64, date time.Time) (*domain.DeskRelease, error) {
	key := releaseKey(deskID, date)
	if existing, ok := f.releases[key]; ok {
		return existing, nil
	}
	f.nextID++
	rel := &domain.DeskRelease{ID: f.nextID, DeskID: deskID, ReleaseDate: date, CreatedAt: time.Now()}
	f.releases[key] = rel
	return rel, nil
}

func (f *fakeReleaseStore) Delete(_ context.Context, deskID int64, date time.Time) error {
	key := releaseKey(deskID, date)
	if _, ok := f.releases[key]; !ok {
		return releaseRepo.ErrReleaseNotFound
	}
	delete(f.releases, key)
	return nil
}

func (f *fakeReleaseStore) Exists(_ context.Context, deskID int64, date time.Time) (bool, error) {
	_, ok := f.releases[releaseKey(deskID, date)]
	return ok, nil
}

func (f *fakeReleaseStore) ListUpcoming(_ context.Context, deskID int64, from time.Time) ([]*domain.DeskRelease, error) {
	result := make([]*domain.DeskRelease, 0)
	for _, rel := range f.releases {
		if rel.DeskID == deskID && !rel.ReleaseDate.Before(from) {
			result = append(result, rel)
		}
	}
	return result, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	svc   *Service
	uc    *createRelease.UseCase
	store *fakeReleaseStore
}

func newTestEnv() *testEnv {
	owner := uuid.New()
	desks := &fakeDeskRepo{desks: map[int64]*domain.Desk{
		2: {ID: 2, OfficeID: 1, Label: "A-02", ReservedFor: &owner},
	}}
	store := &fakeReleaseStore{releases: map[string]*domain.DeskRelease{}}

	svc := NewService(store, desks, nopLogger{})
	svc.timeProvider = &stubTimeProvider{now: testDate}

	uc := createRelease.NewUseCase(desks, store, &fakeTxManager{}, nopLogger{})
	return &testEnv{svc: svc, uc: uc, store: store}
}

// Удаление release возвращает стол владельцу: после create → delete
// проверка "освобожден ли стол на дату" снова отвечает false
func TestDelete_RestoresReservation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.uc.Execute(ctx, &createRelease.Request{DeskID: 2, Date: testDate})
	require.NoError(t, err)

	released, err := env.store.Exists(ctx, 2, testDate)
	require.NoError(t, err)
	require.True(t, released)

	require.NoError(t, env.svc.Delete(ctx, 2, testDate))

	released, err = env.store.Exists(ctx, 2, testDate)
	require.NoError(t, err)
	assert.False(t, released)
}

func TestDelete_NormalizesDate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.uc.Execute(ctx, &createRelease.Request{DeskID: 2, Date: testDate})
	require.NoError(t, err)

	// Полдень по UTC+7 указывает на тот же календарный день
	loc := time.FixedZone("UTC+7", 7*60*60)
	require.NoError(t, env.svc.Delete(ctx, 2, time.Date(2025, 1, 6, 12, 0, 0, 0, loc)))

	released, err := env.store.Exists(ctx, 2, testDate)
	require.NoError(t, err)
	assert.False(t, released)
}

func TestDelete_NotFound(t *testing.T) {
	env := newTestEnv()

	err := env.svc.Delete(context.Background(), 2, testDate)

	assert.ErrorIs(t, err, ErrReleaseNotFound)
}

func TestListUpcoming(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for _, d := range []time.Time{testDate.AddDate(0, 0, -1), testDate, testDate.AddDate(0, 0, 3)} {
		_, err := env.uc.Execute(ctx, &createRelease.Request{DeskID: 2, Date: d})
		require.NoError(t, err)
	}

	resp, err := env.svc.ListUpcoming(ctx, 2)

	require.NoError(t, err)
	// Вчерашний release отфильтрован
	assert.Len(t, resp.Releases, 2)
}

func TestListUpcoming_DeskNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.ListUpcoming(context.Background(), 42)

	assert.ErrorIs(t, err, ErrDeskNotFound)
}
