package desks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	staffRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/staff"
)

// Service сервис для администрирования столов.
// Движок конфликтов читает reserved_for при каждой проверке, поэтому
// изменения закрепления видны следующему бронированию немедленно.
type Service struct {
	deskRepo    DeskRepository
	bookingRepo BookingRepository
	releaseRepo ReleaseRepository
	staffRepo   StaffRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(
	deskRepo DeskRepository,
	bookingRepo BookingRepository,
	releaseRepo ReleaseRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		deskRepo:    deskRepo,
		bookingRepo: bookingRepo,
		releaseRepo: releaseRepo,
		staffRepo:   staffRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает новый стол, опционально сразу закрепляя его за сотрудником
func (s *Service) Create(ctx context.Context, req *CreateDeskRequest) (*DeskResponse, error) {
	s.logger.Info("CreateDesk: office=%d, label=%q", req.OfficeID, req.Label)

	if req.OfficeID <= 0 {
		return nil, fmt.Errorf("%w: officeID must be positive", ErrInvalidInput)
	}
	if req.Label == "" || len(req.Label) > domain.MaxLabelLength {
		return nil, fmt.Errorf("%w: label is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxLabelLength)
	}

	deskType := domain.DeskType(req.Type)
	if !deskType.IsValid() {
		return nil, fmt.Errorf("%w: invalid desk type %q", ErrInvalidInput, req.Type)
	}

	if req.ReservedFor != nil {
		if err := s.checkOwnershipAllowed(ctx, *req.ReservedFor, 0); err != nil {
			return nil, err
		}
	}

	desk := &domain.Desk{
		OfficeID:    req.OfficeID,
		Label:       req.Label,
		Type:        deskType,
		ReservedFor: req.ReservedFor,
	}

	created, err := s.deskRepo.Create(ctx, desk)
	if err != nil {
		s.logger.Error("CreateDesk: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDesk: created desk id=%d in office=%d", created.ID, created.OfficeID)
	return FromDomainDesk(created), nil
}

// GetByID получает стол по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*DeskResponse, error) {
	desk, err := s.deskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			return nil, ErrDeskNotFound
		}
		s.logger.Error("GetDesk: repository error for desk id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return FromDomainDesk(desk), nil
}

// ListByOffice получает все столы офиса
func (s *Service) ListByOffice(ctx context.Context, officeID int64) (*DeskListResponse, error) {
	if officeID <= 0 {
		return nil, fmt.Errorf("%w: officeID must be positive", ErrInvalidInput)
	}

	desks, err := s.deskRepo.ListByOffice(ctx, officeID)
	if err != nil {
		s.logger.Error("ListDesks: repository error for office=%d: %v", officeID, err)
		return nil, fmt.Errorf("%w: ListByOffice - repository error: %v", ErrInternal, err)
	}

	return FromDomainDeskList(desks), nil
}

// Update изменяет атрибуты стола и его закрепление.
// Закрепление и атрибуты обновляются в одной транзакции.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateDeskRequest) (*DeskResponse, error) {
	s.logger.Info("UpdateDesk: desk id=%d", id)

	if req.Type != nil && !domain.DeskType(*req.Type).IsValid() {
		return nil, fmt.Errorf("%w: invalid desk type %q", ErrInvalidInput, *req.Type)
	}
	if req.Label != nil && (*req.Label == "" || len(*req.Label) > domain.MaxLabelLength) {
		return nil, fmt.Errorf("%w: label must be non-empty and at most %d characters",
			ErrInvalidInput, domain.MaxLabelLength)
	}
	if req.ReservedFor != nil && req.ClearReservedFor {
		return nil, fmt.Errorf("%w: cannot set and clear reservedFor at once", ErrInvalidInput)
	}

	var result *domain.Desk

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.deskRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, deskRepo.ErrDeskNotFound) {
				return ErrDeskNotFound
			}
			return fmt.Errorf("%w: Update - failed to get desk: %v", ErrInternal, err)
		}

		if req.Label != nil || req.Type != nil {
			fields := deskRepo.UpdateFields{Label: req.Label}
			if req.Type != nil {
				t := domain.DeskType(*req.Type)
				fields.Type = &t
			}
			if err := s.deskRepo.Update(txCtx, id, fields); err != nil {
				return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
			}
		}

		if req.ReservedFor != nil {
			if err := s.checkOwnershipAllowed(txCtx, *req.ReservedFor, id); err != nil {
				return err
			}
			if err := s.deskRepo.SetReservedFor(txCtx, id, req.ReservedFor); err != nil {
				return fmt.Errorf("%w: Update - failed to set reservedFor: %v", ErrInternal, err)
			}
		} else if req.ClearReservedFor {
			if err := s.deskRepo.SetReservedFor(txCtx, id, nil); err != nil {
				return fmt.Errorf("%w: Update - failed to clear reservedFor: %v", ErrInternal, err)
			}
		}

		updated, err := s.deskRepo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Update - failed to re-read desk: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateDesk: updated desk id=%d", id)
	return FromDomainDesk(result), nil
}

// Delete удаляет стол вместе с его бронированиями и releases.
// Каскад выполняется в одной транзакции.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteDesk: desk id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.deskRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, deskRepo.ErrDeskNotFound) {
				return ErrDeskNotFound
			}
			return fmt.Errorf("%w: Delete - failed to get desk: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.DeleteByDeskID(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - failed to delete bookings: %v", ErrInternal, err)
		}
		if err := s.releaseRepo.DeleteByDeskID(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - failed to delete releases: %v", ErrInternal, err)
		}
		if err := s.deskRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteDesk: deleted desk id=%d with its bookings and releases", id)
	return nil
}

// checkOwnershipAllowed проверяет, что сотрудник существует и не владеет
// другим столом (кроме excludeDeskID, если обновляется тот же стол)
func (s *Service) checkOwnershipAllowed(ctx context.Context, staffID uuid.UUID, excludeDeskID int64) error {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateDesk: staff member %s not found", staffID)
			return ErrStaffNotFound
		}
		return fmt.Errorf("%w: failed to get staff member: %v", ErrInternal, err)
	}

	owned, err := s.deskRepo.GetByReservedFor(ctx, staffID)
	if err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			return nil
		}
		return fmt.Errorf("%w: failed to look up owned desk: %v", ErrInternal, err)
	}

	if owned.ID != excludeDeskID {
		s.logger.Warn("UpdateDesk: staff member %s already owns desk id=%d", staffID, owned.ID)
		return ErrStaffAlreadyOwnsDesk
	}

	return nil
}
