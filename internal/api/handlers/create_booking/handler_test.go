package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	err  error
	resp *createBooking.Response
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &createBooking.Response{
		ID:            1,
		DeskID:        req.DeskID,
		StaffMemberID: req.StaffMemberID,
		BookingDate:   req.Date,
		Slot:          string(req.Slot),
		Status:        string(domain.StatusRequested),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string, staffID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if staffID != "" {
		req.Header.Set("X-Staff-ID", staffID)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

const validBody = `{"deskId": 2, "date": "2025-01-06", "slot": "morning"}`

func TestHandle_Created(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, validBody, uuid.NewString())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.DeskID)
	assert.Equal(t, "2025-01-06", resp.Date)
	assert.Equal(t, "morning", resp.Slot)
	assert.Equal(t, "requested", resp.Status)
}

func TestHandle_MissingStaffHeader(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, validBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`, uuid.NewString())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{},
		`{"deskId": 2, "date": "06.01.2025", "slot": "morning"}`, uuid.NewString())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_RejectionReasons(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "desk not found",
			err:        createBooking.ErrDeskNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Desk not found",
		},
		{
			name:       "desk reserved for another",
			err:        createBooking.ErrDeskReservedForOther,
			wantStatus: http.StatusForbidden,
			wantMsg:    "This desk is reserved for another staff member.",
		},
		{
			name:       "owner must release first",
			err:        createBooking.ErrOwnerMustRelease,
			wantStatus: http.StatusConflict,
			wantMsg:    "You have a reserved desk for this date. Please release it before booking another desk.",
		},
		{
			name:       "staff already booked",
			err:        createBooking.ErrStaffAlreadyBooked,
			wantStatus: http.StatusConflict,
			wantMsg:    "Staff member already has a booking for this date.",
		},
		{
			name:       "slot conflict full day",
			err:        &createBooking.SlotConflictError{ConflictingSlot: domain.SlotFullDay},
			wantStatus: http.StatusConflict,
			wantMsg:    "Desk is already booked for full_day on this date.",
		},
		{
			name:       "slot conflict morning",
			err:        &createBooking.SlotConflictError{ConflictingSlot: domain.SlotMorning},
			wantStatus: http.StatusConflict,
			wantMsg:    "Desk is already booked for morning on this date.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody, uuid.NewString())

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrInternal}, validBody, uuid.NewString())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
