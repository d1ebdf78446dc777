package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	staffRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/staff"
)

// --- Фейки репозиториев поверх памяти ---

type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	stored := *b
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.bookings = append(f.bookings, &stored)

	result := stored
	return &result, nil
}

func (f *fakeBookingRepo) GetActiveByDeskAndDate(_ context.Context, deskID int64, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.DeskID == deskID && domain.SameDay(b.BookingDate, date) && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetActiveByStaffAndDate(_ context.Context, staffID uuid.UUID, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.StaffMemberID == staffID && domain.SameDay(b.BookingDate, date) && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeDeskRepo struct {
	desks map[int64]*domain.Desk
}

func (f *fakeDeskRepo) GetByID(_ context.Context, id int64) (*domain.Desk, error) {
	desk, ok := f.desks[id]
	if !ok {
		return nil, deskRepo.ErrDeskNotFound
	}
	return desk, nil
}

func (f *fakeDeskRepo) GetByReservedFor(_ context.Context, staffID uuid.UUID) (*domain.Desk, error) {
	for _, d := range f.desks {
		if d.ReservedFor != nil && *d.ReservedFor == staffID {
			return d, nil
		}
	}
	return nil, deskRepo.ErrDeskNotFound
}

type fakeReleaseRepo struct {
	released map[string]bool
}

func releaseKey(deskID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", deskID, date.Format(domain.DateFormat))
}

func (f *fakeReleaseRepo) Exists(_ context.Context, deskID int64, date time.Time) (bool, error) {
	return f.released[releaseKey(deskID, date)], nil
}

type fakeStaffRepo struct {
	members map[uuid.UUID]*domain.StaffMember
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.StaffMember, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return member, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Сборка окружения ---

type env struct {
	useCase  *UseCase
	bookings *fakeBookingRepo
	desks    *fakeDeskRepo
	releases *fakeReleaseRepo
	staff    *fakeStaffRepo
}

func newEnv() *env {
	e := &env{
		bookings: &fakeBookingRepo{},
		desks:    &fakeDeskRepo{desks: map[int64]*domain.Desk{}},
		releases: &fakeReleaseRepo{released: map[string]bool{}},
		staff:    &fakeStaffRepo{members: map[uuid.UUID]*domain.StaffMember{}},
	}
	e.useCase = NewUseCase(e.bookings, e.desks, e.releases, e.staff, &fakeTxManager{}, nopLogger{})
	return e
}

func (e *env) addStaff(active bool) uuid.UUID {
	id := uuid.New()
	e.staff.members[id] = &domain.StaffMember{
		ID:     id,
		Name:   "Staff " + id.String()[:8],
		Email:  id.String()[:8] + "@example.com",
		Active: active,
		Role:   domain.RoleEmployee,
	}
	return id
}

func (e *env) addDesk(id int64, reservedFor *uuid.UUID) {
	e.desks.desks[id] = &domain.Desk{
		ID:          id,
		OfficeID:    1,
		Label:       fmt.Sprintf("A-%02d", id),
		Type:        domain.DeskTypeStandard,
		ReservedFor: reservedFor,
	}
}

func (e *env) release(deskID int64, date time.Time) {
	e.releases.released[releaseKey(deskID, date)] = true
}

var testDate = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	e := newEnv()
	staffID := e.addStaff(true)
	e.addDesk(1, nil)

	resp, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        1,
		StaffMemberID: staffID,
		Date:          testDate,
		Slot:          domain.SlotMorning,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusRequested), resp.Status)
	assert.Equal(t, string(domain.SlotMorning), resp.Slot)
	assert.True(t, resp.BookingDate.Equal(testDate))
}

func TestExecute_NormalizesDate(t *testing.T) {
	e := newEnv()
	staffID := e.addStaff(true)
	e.addDesk(1, nil)

	loc := time.FixedZone("UTC+3", 3*60*60)
	resp, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        1,
		StaffMemberID: staffID,
		Date:          time.Date(2025, 1, 6, 14, 30, 0, 0, loc),
		Slot:          domain.SlotFullDay,
	})

	require.NoError(t, err)
	assert.True(t, resp.BookingDate.Equal(testDate))
}

func TestExecute_DeskNotFound(t *testing.T) {
	e := newEnv()
	staffID := e.addStaff(true)

	_, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        42,
		StaffMemberID: staffID,
		Date:          testDate,
		Slot:          domain.SlotMorning,
	})

	assert.ErrorIs(t, err, ErrDeskNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	e := newEnv()
	e.addDesk(1, nil)

	_, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        1,
		StaffMemberID: uuid.New(),
		Date:          testDate,
		Slot:          domain.SlotMorning,
	})

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_StaffInactive(t *testing.T) {
	e := newEnv()
	staffID := e.addStaff(false)
	e.addDesk(1, nil)

	_, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        1,
		StaffMemberID: staffID,
		Date:          testDate,
		Slot:          domain.SlotMorning,
	})

	assert.ErrorIs(t, err, ErrStaffInactive)
}

func TestExecute_ReservedDeskBlocksOthers(t *testing.T) {
	e := newEnv()
	owner := e.addStaff(true)
	requester := e.addStaff(true)
	e.addDesk(2, &owner)

	req := &Request{
		DeskID:        2,
		StaffMemberID: requester,
		Date:          testDate,
		Slot:          domain.SlotFullDay,
	}

	_, err := e.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDeskReservedForOther)

	// После release той же даты идентичный запрос проходит
	e.release(2, testDate)

	resp, err := e.useCase.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.DeskID)
}

func TestExecute_ReleaseScopedToDate(t *testing.T) {
	e := newEnv()
	owner := e.addStaff(true)
	requester := e.addStaff(true)
	e.addDesk(2, &owner)
	e.release(2, testDate)

	// Release на 6 января не открывает 7 января
	_, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        2,
		StaffMemberID: requester,
		Date:          testDate.AddDate(0, 0, 1),
		Slot:          domain.SlotMorning,
	})

	assert.ErrorIs(t, err, ErrDeskReservedForOther)
}

func TestExecute_OwnerMustReleaseOwnDesk(t *testing.T) {
	e := newEnv()
	owner := e.addStaff(true)
	e.addDesk(1, &owner)
	e.addDesk(3, nil)

	// Владелец D1 бронирует другой стол D3 без release своего стола
	_, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        3,
		StaffMemberID: owner,
		Date:          testDate,
		Slot:          domain.SlotMorning,
	})
	assert.ErrorIs(t, err, ErrOwnerMustRelease)

	// После release своего стола бронирование другого стола проходит
	e.release(1, testDate)

	resp, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        3,
		StaffMemberID: owner,
		Date:          testDate,
		Slot:          domain.SlotMorning,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.DeskID)
}

func TestExecute_DailyExclusivity(t *testing.T) {
	e := newEnv()
	staffID := e.addStaff(true)
	e.addDesk(1, nil)
	e.addDesk(2, nil)

	_, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        1,
		StaffMemberID: staffID,
		Date:          testDate,
		Slot:          domain.SlotMorning,
	})
	require.NoError(t, err)

	// Второе бронирование того же сотрудника в тот же день, другой стол
	// и непересекающийся слот - все равно отказ
	_, err = e.useCase.Execute(context.Background(), &Request{
		DeskID:        2,
		StaffMemberID: staffID,
		Date:          testDate,
		Slot:          domain.SlotAfternoon,
	})
	assert.ErrorIs(t, err, ErrStaffAlreadyBooked)

	// Другой день - проходит
	_, err = e.useCase.Execute(context.Background(), &Request{
		DeskID:        2,
		StaffMemberID: staffID,
		Date:          testDate.AddDate(0, 0, 1),
		Slot:          domain.SlotAfternoon,
	})
	assert.NoError(t, err)
}

func TestExecute_SlotOverlap(t *testing.T) {
	tests := []struct {
		name     string
		existing domain.Slot
		incoming domain.Slot
		conflict bool
	}{
		{"morning then afternoon", domain.SlotMorning, domain.SlotAfternoon, false},
		{"afternoon then morning", domain.SlotAfternoon, domain.SlotMorning, false},
		{"morning then morning", domain.SlotMorning, domain.SlotMorning, true},
		{"morning then full day", domain.SlotMorning, domain.SlotFullDay, true},
		{"full day then afternoon", domain.SlotFullDay, domain.SlotAfternoon, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			first := e.addStaff(true)
			second := e.addStaff(true)
			e.addDesk(1, nil)

			_, err := e.useCase.Execute(context.Background(), &Request{
				DeskID:        1,
				StaffMemberID: first,
				Date:          testDate,
				Slot:          tt.existing,
			})
			require.NoError(t, err)

			_, err = e.useCase.Execute(context.Background(), &Request{
				DeskID:        1,
				StaffMemberID: second,
				Date:          testDate,
				Slot:          tt.incoming,
			})

			if tt.conflict {
				require.ErrorIs(t, err, ErrSlotConflict)

				var slotErr *SlotConflictError
				require.True(t, errors.As(err, &slotErr))
				assert.Equal(t, tt.existing, slotErr.ConflictingSlot)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	e := newEnv()
	first := e.addStaff(true)
	second := e.addStaff(true)
	e.addDesk(1, nil)

	resp, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        1,
		StaffMemberID: first,
		Date:          testDate,
		Slot:          domain.SlotFullDay,
	})
	require.NoError(t, err)

	// Отмененное бронирование не участвует в проверках конфликтов
	for _, b := range e.bookings.bookings {
		if b.ID == resp.ID {
			b.Status = domain.StatusCancelled
		}
	}

	_, err = e.useCase.Execute(context.Background(), &Request{
		DeskID:        1,
		StaffMemberID: second,
		Date:          testDate,
		Slot:          domain.SlotFullDay,
	})
	assert.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	e := newEnv()
	staffID := e.addStaff(true)
	e.addDesk(1, nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero desk", &Request{DeskID: 0, StaffMemberID: staffID, Date: testDate, Slot: domain.SlotMorning}},
		{"nil staff", &Request{DeskID: 1, StaffMemberID: uuid.Nil, Date: testDate, Slot: domain.SlotMorning}},
		{"zero date", &Request{DeskID: 1, StaffMemberID: staffID, Slot: domain.SlotMorning}},
		{"bad slot", &Request{DeskID: 1, StaffMemberID: staffID, Date: testDate, Slot: "evening"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.useCase.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCheck_ExcludeBookingID(t *testing.T) {
	e := newEnv()
	staffID := e.addStaff(true)
	e.addDesk(1, nil)

	resp, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        1,
		StaffMemberID: staffID,
		Date:          testDate,
		Slot:          domain.SlotFullDay,
	})
	require.NoError(t, err)

	// Кандидат, совпадающий с собственным бронированием, проходит
	// при исключении этого бронирования из проверок
	err = e.useCase.Check(context.Background(), Candidate{
		DeskID:           1,
		StaffMemberID:    staffID,
		Date:             testDate,
		Slot:             domain.SlotMorning,
		ExcludeBookingID: resp.ID,
	})
	assert.NoError(t, err)

	// Без исключения - дневная эксклюзивность срабатывает
	err = e.useCase.Check(context.Background(), Candidate{
		DeskID:        1,
		StaffMemberID: staffID,
		Date:          testDate,
		Slot:          domain.SlotMorning,
	})
	assert.ErrorIs(t, err, ErrStaffAlreadyBooked)
}

func TestExecute_ReleaseEndToEnd(t *testing.T) {
	// Сценарий: стол D2 закреплен за S1; S1 освобождает D2 на 2025-01-06;
	// S2 бронирует D2 full_day на эту дату; S1, не имея брони, в этот день
	// работает где-то еще; на 2025-01-07 закрепление снова действует.
	e := newEnv()
	s1 := e.addStaff(true)
	s2 := e.addStaff(true)
	e.addDesk(2, &s1)

	e.release(2, testDate)

	resp, err := e.useCase.Execute(context.Background(), &Request{
		DeskID:        2,
		StaffMemberID: s2,
		Date:          testDate,
		Slot:          domain.SlotFullDay,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.DeskID)

	_, err = e.useCase.Execute(context.Background(), &Request{
		DeskID:        2,
		StaffMemberID: s2,
		Date:          testDate.AddDate(0, 0, 1),
		Slot:          domain.SlotFullDay,
	})
	assert.ErrorIs(t, err, ErrDeskReservedForOther)
}
