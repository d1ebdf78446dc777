package staffsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	staffRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/staff"
)

// Service сервис для администрирования сотрудников
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// Create создает нового сотрудника. Новый сотрудник всегда активен.
func (s *Service) Create(ctx context.Context, req *CreateStaffRequest) (*StaffResponse, error) {
	s.logger.Info("CreateStaff: name=%q, email=%q, role=%q", req.Name, req.Email, req.Role)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("CreateStaff: validation failed: %v", err)
		return nil, err
	}

	member := &domain.StaffMember{
		ID:     uuid.New(),
		Name:   req.Name,
		Email:  strings.ToLower(req.Email),
		Active: true,
		Role:   domain.StaffRole(req.Role),
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("CreateStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: created staff member %s", created.ID)
	return FromDomainStaff(created), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaff: repository error for %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return FromDomainStaff(member), nil
}

// Update изменяет атрибуты сотрудника. Active=false деактивирует:
// деактивированный сотрудник не проходит проверку движка бронирования.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateStaffRequest) (*StaffResponse, error) {
	s.logger.Info("UpdateStaff: staff member %s", id)

	fields := staffRepo.UpdateFields{
		Name:   req.Name,
		Active: req.Active,
	}

	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if !isValidEmail(email) {
			return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, *req.Email)
		}
		fields.Email = &email
	}

	if req.Role != nil {
		role := domain.StaffRole(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, *req.Role)
		}
		fields.Role = &role
	}

	if err := s.staffRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateStaff: staff member %s not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateStaff: repository error for %s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStaff: failed to re-read staff member %s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to re-read: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStaff: updated staff member %s", id)
	return FromDomainStaff(updated), nil
}

// Delete удаляет сотрудника
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("DeleteStaff: staff member %s", id)

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return ErrStaffNotFound
		}
		s.logger.Error("DeleteStaff: repository error for %s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateCreate(req *CreateStaffRequest) error {
	if req.Name == "" || len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxNameLength)
	}
	if !isValidEmail(strings.ToLower(req.Email)) {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, req.Email)
	}
	if !domain.StaffRole(req.Role).IsValid() {
		return fmt.Errorf("%w: invalid role %q", ErrInvalidInput, req.Role)
	}
	return nil
}

func isValidEmail(email string) bool {
	if email == "" || len(email) > domain.MaxEmailLength {
		return false
	}
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
