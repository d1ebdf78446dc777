package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, отмена, статистика.
// Создание и обновление идут через usecases с проверкой конфликтов.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetStaffBookings получает историю бронирований сотрудника
func (s *Service) GetStaffBookings(ctx context.Context, staffID uuid.UUID) (*models.BookingListResponse, error) {
	s.logger.Info("GetStaffBookings: fetching bookings for staff=%s", staffID)

	bookings, err := s.bookingRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		s.logger.Error("GetStaffBookings: repository error for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStaffBookings: fetched %d bookings for staff=%s", len(bookings), staffID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOfficeBookings получает бронирования офиса с фильтрацией
// по периоду, слоту и включению неактивных бронирований
func (s *Service) GetOfficeBookings(ctx context.Context, req *models.GetOfficeBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOfficeBookings: fetching bookings for office=%d", req.OfficeID)

	if req.OfficeID <= 0 {
		return nil, fmt.Errorf("%w: officeID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOfficeBookings: invalid filter for office=%d: %v", req.OfficeID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByOfficeWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOfficeBookings: repository error for office=%d: %v", req.OfficeID, err)
		return nil, fmt.Errorf("%w: GetOfficeBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOfficeBookings: fetched %d bookings for office=%d", len(bookings), req.OfficeID)
	return models.FromDomainBookingList(bookings), nil
}

// GetStats агрегирует количество бронирований офиса по датам периода.
// Считает бронирования во всех статусах; даты без бронирований
// в результате отсутствуют - нулевые строки не синтезируются.
func (s *Service) GetStats(ctx context.Context, req *models.GetStatsRequest) (*models.StatsResponse, error) {
	s.logger.Info("GetStats: office=%d, period=%s to %s",
		req.OfficeID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.OfficeID <= 0 {
		return nil, fmt.Errorf("%w: officeID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start := domain.DateOnly(req.StartDate)
	end := domain.DateOnly(req.EndDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	counts, err := s.bookingRepo.DailyCounts(ctx, req.OfficeID, start, end)
	if err != nil {
		s.logger.Error("GetStats: repository error for office=%d: %v", req.OfficeID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDailyCounts(counts), nil
}

// Cancel отменяет бронирование. Отмена реализована физическим удалением:
// исчезнувшая строка немедленно перестает участвовать в проверках конфликтов.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}
