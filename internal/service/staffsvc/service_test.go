package staffsvc

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	staffRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/staff"
)

type fakeStaffRepo struct {
	staff map[uuid.UUID]*domain.StaffMember
}

func (f *fakeStaffRepo) Create(_ context.Context, s *domain.StaffMember) (*domain.StaffMember, error) {
	created := *s
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.staff[created.ID] = &created
	return &created, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.StaffMember, error) {
	m, ok := f.staff[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, id uuid.UUID, fields staffRepo.UpdateFields) error {
	m, ok := f.staff[id]
	if !ok {
		return staffRepo.ErrStaffNotFound
	}
	if fields.Name != nil {
		m.Name = *fields.Name
	}
	if fields.Email != nil {
		m.Email = *fields.Email
	}
	if fields.Active != nil {
		m.Active = *fields.Active
	}
	if fields.Role != nil {
		m.Role = *fields.Role
	}
	m.UpdatedAt = time.Now()
	return nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.staff[id]; !ok {
		return staffRepo.ErrStaffNotFound
	}
	delete(f.staff, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeStaffRepo) {
	repo := &fakeStaffRepo{staff: map[uuid.UUID]*domain.StaffMember{}}
	return NewService(repo, nopLogger{}), repo
}

func TestCreate(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Create(context.Background(), &CreateStaffRequest{
		Name:  "Alice Johnson",
		Email: "Alice.Johnson@Example.Com",
		Role:  "manager",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.True(t, resp.Active)
	// Email приводится к нижнему регистру
	assert.Equal(t, "alice.johnson@example.com", resp.Email)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name string
		req  CreateStaffRequest
	}{
		{"empty name", CreateStaffRequest{Name: "", Email: "a@b.com", Role: "employee"}},
		{"bad email", CreateStaffRequest{Name: "Bob", Email: "not-an-email", Role: "employee"}},
		{"bad role", CreateStaffRequest{Name: "Bob", Email: "a@b.com", Role: "director"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestUpdate_Deactivate(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(context.Background(), &CreateStaffRequest{
		Name:  "Bob Smith",
		Email: "bob@example.com",
		Role:  "employee",
	})
	require.NoError(t, err)

	inactive := false
	resp, err := svc.Update(context.Background(), created.ID, &UpdateStaffRequest{Active: &inactive})

	require.NoError(t, err)
	assert.False(t, resp.Active)
	// Остальные поля не тронуты
	assert.Equal(t, "Bob Smith", resp.Name)
}

func TestUpdate_InvalidRole(t *testing.T) {
	svc, _ := newService()

	bad := "director"
	_, err := svc.Update(context.Background(), uuid.New(), &UpdateStaffRequest{Role: &bad})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newService()

	name := "Ghost"
	_, err := svc.Update(context.Background(), uuid.New(), &UpdateStaffRequest{Name: &name})

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(context.Background(), &CreateStaffRequest{
		Name:  "Carol Diaz",
		Email: "carol@example.com",
		Role:  "employee",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrStaffNotFound)
}
