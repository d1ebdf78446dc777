package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	counts   []domain.DailyCount

	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByStaffID(_ context.Context, staffID uuid.UUID) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.StaffMemberID == staffID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByOfficeWithFilter(_ context.Context, _ domain.OfficeBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) DailyCounts(_ context.Context, _ int64, start, end time.Time) ([]domain.DailyCount, error) {
	f.lastStart = start
	f.lastEnd = end
	return f.counts, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_FormatsDate(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, DeskID: 2, StaffMemberID: uuid.New(), BookingDate: testDate, Slot: domain.SlotMorning, Status: domain.StatusRequested},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", resp.BookingDate)
	assert.Equal(t, "morning", resp.Slot)
}

func TestGetStats_InvalidRange(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetStats(context.Background(), &models.GetStatsRequest{
		OfficeID:  1,
		StartDate: testDate,
		EndDate:   testDate.AddDate(0, 0, -1),
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetStats_Validation(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetStats(context.Background(), &models.GetStatsRequest{
		OfficeID:  0,
		StartDate: testDate,
		EndDate:   testDate,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetStats(context.Background(), &models.GetStatsRequest{OfficeID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStats_NormalizesBoundaries(t *testing.T) {
	repo := &fakeBookingRepo{counts: []domain.DailyCount{{Date: testDate, Count: 3}}}
	svc := NewService(repo, nopLogger{})

	loc := time.FixedZone("UTC+5", 5*60*60)
	resp, err := svc.GetStats(context.Background(), &models.GetStatsRequest{
		OfficeID:  1,
		StartDate: time.Date(2025, 1, 6, 23, 30, 0, 0, loc),
		EndDate:   time.Date(2025, 1, 12, 1, 0, 0, 0, loc),
	})

	require.NoError(t, err)
	assert.True(t, repo.lastStart.Equal(testDate))
	assert.True(t, repo.lastEnd.Equal(time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)))

	require.Len(t, resp.Stats, 1)
	assert.Equal(t, "2025-01-06", resp.Stats[0].Date)
	assert.Equal(t, 3, resp.Stats[0].Count)
}

func TestCancel(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, DeskID: 2, StaffMemberID: uuid.New(), BookingDate: testDate, Slot: domain.SlotMorning, Status: domain.StatusRequested},
	}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 1))

	// Повторная отмена: строки больше нет
	assert.ErrorIs(t, svc.Cancel(context.Background(), 1), ErrBookingNotFound)
}

func TestGetOfficeBookings_InvalidSlotFilter(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	bad := "evening"
	_, err := svc.GetOfficeBookings(context.Background(), &models.GetOfficeBookingsRequest{
		OfficeID: 1,
		Slot:     &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
