package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	staffRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/staff"
)

// UseCase use case создания бронирования: центральная процедура
// разрешения конфликтов. Проверки применяются в фиксированном порядке -
// сначала владение столом, затем дневная эксклюзивность, затем пересечение
// слотов - чтобы причина отказа была максимально конкретной.
type UseCase struct {
	bookingRepo BookingRepository
	deskRepo    DeskRepository
	releaseRepo ReleaseRepository
	staffRepo   StaffRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	deskRepo DeskRepository,
	releaseRepo ReleaseRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		deskRepo:    deskRepo,
		releaseRepo: releaseRepo,
		staffRepo:   staffRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Candidate кандидат бронирования для проверки конфликтов.
// ExcludeBookingID исключает существующее бронирование из проверок -
// используется при повторной валидации обновления (0 = без исключения).
type Candidate struct {
	DeskID           int64
	StaffMemberID    uuid.UUID
	Date             time.Time
	Slot             domain.Slot
	ExcludeBookingID int64
}

// Execute выполняет use case создания бронирования.
// Все проверки и вставка выполняются в одной сериализуемой транзакции:
// два конкурентных запроса на один стол и дату не могут оба пройти
// проверку пересечения слотов по устаревшему чтению.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: desk=%d, staff=%s, date=%s, slot=%s",
		req.DeskID, req.StaffMemberID, req.Date.Format(domain.DateFormat), req.Slot)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Нормализуем дату один раз на входе в движок
	date := domain.DateOnly(req.Date)

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		candidate := Candidate{
			DeskID:        req.DeskID,
			StaffMemberID: req.StaffMemberID,
			Date:          date,
			Slot:          req.Slot,
		}

		if err := uc.Check(txCtx, candidate); err != nil {
			return err
		}

		booking := &domain.Booking{
			DeskID:        req.DeskID,
			StaffMemberID: req.StaffMemberID,
			BookingDate:   date,
			Slot:          req.Slot,
			Status:        domain.StatusRequested,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return FromDomainBooking(result), nil
}

// Check выполняет проверки конфликтов для кандидата в строгом порядке:
//
//  1. Стол существует.
//  2. Сотрудник существует и активен.
//  3. Если стол закреплен за другим сотрудником - на дату должен быть release.
//  4. Если у заявителя есть свой закрепленный стол - он должен быть освобожден
//     на эту дату, даже если бронируется другой стол.
//  5. У сотрудника нет другого активного бронирования на эту дату.
//  6. На столе нет активного бронирования с пересекающимся слотом.
//
// Вызывается внутри сериализуемой транзакции; повторная валидация
// обновления переиспользует ту же процедуру с ExcludeBookingID.
func (uc *UseCase) Check(ctx context.Context, c Candidate) error {
	// 1. Существование стола
	desk, err := uc.deskRepo.GetByID(ctx, c.DeskID)
	if err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			uc.logger.Warn("CreateBooking: desk id=%d not found", c.DeskID)
			return ErrDeskNotFound
		}
		uc.logger.Error("CreateBooking: failed to get desk id=%d: %v", c.DeskID, err)
		return fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
	}

	// 2. Существование и активность сотрудника
	member, err := uc.staffRepo.GetByID(ctx, c.StaffMemberID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff member %s not found", c.StaffMemberID)
			return ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff member %s: %v", c.StaffMemberID, err)
		return fmt.Errorf("%w: failed to get staff member: %v", ErrInternal, err)
	}
	if !member.Active {
		uc.logger.Warn("CreateBooking: staff member %s is inactive", c.StaffMemberID)
		return ErrStaffInactive
	}

	// 3. Стол закреплен за другим сотрудником
	if desk.IsReservedDesk() && !desk.IsOwnedBy(c.StaffMemberID) {
		released, err := uc.releaseRepo.Exists(ctx, desk.ID, c.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check release for desk=%d: %v", desk.ID, err)
			return fmt.Errorf("%w: failed to check release: %v", ErrInternal, err)
		}
		if !released {
			uc.logger.Warn("CreateBooking: desk id=%d is reserved for %s, no release on %s",
				desk.ID, *desk.ReservedFor, c.Date.Format(domain.DateFormat))
			return ErrDeskReservedForOther
		}
	}

	// 4. У заявителя есть свой закрепленный стол - он должен быть освобожден,
	// независимо от того, какой стол бронируется
	ownDesk, err := uc.deskRepo.GetByReservedFor(ctx, c.StaffMemberID)
	if err != nil && !errors.Is(err, deskRepo.ErrDeskNotFound) {
		uc.logger.Error("CreateBooking: failed to look up owned desk for staff=%s: %v", c.StaffMemberID, err)
		return fmt.Errorf("%w: failed to look up owned desk: %v", ErrInternal, err)
	}
	if ownDesk != nil {
		released, err := uc.releaseRepo.Exists(ctx, ownDesk.ID, c.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check release for own desk=%d: %v", ownDesk.ID, err)
			return fmt.Errorf("%w: failed to check release: %v", ErrInternal, err)
		}
		if !released {
			uc.logger.Warn("CreateBooking: staff %s owns desk id=%d without release on %s",
				c.StaffMemberID, ownDesk.ID, c.Date.Format(domain.DateFormat))
			return ErrOwnerMustRelease
		}
	}

	// 5. Дневная эксклюзивность сотрудника
	staffBookings, err := uc.bookingRepo.GetActiveByStaffAndDate(ctx, c.StaffMemberID, c.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get staff bookings: %v", err)
		return fmt.Errorf("%w: failed to get staff bookings: %v", ErrInternal, err)
	}
	for _, b := range staffBookings {
		if b.ID == c.ExcludeBookingID {
			continue
		}
		uc.logger.Warn("CreateBooking: staff %s already has booking id=%d on %s",
			c.StaffMemberID, b.ID, c.Date.Format(domain.DateFormat))
		return ErrStaffAlreadyBooked
	}

	// 6. Пересечение слотов на столе
	deskBookings, err := uc.bookingRepo.GetActiveByDeskAndDate(ctx, c.DeskID, c.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get desk bookings: %v", err)
		return fmt.Errorf("%w: failed to get desk bookings: %v", ErrInternal, err)
	}
	if conflict := findSlotConflict(c.Slot, c.ExcludeBookingID, deskBookings); conflict != nil {
		uc.logger.Warn("CreateBooking: slot conflict on desk=%d: existing booking id=%d slot=%s",
			c.DeskID, conflict.ID, conflict.Slot)
		return &SlotConflictError{ConflictingSlot: conflict.Slot}
	}

	return nil
}
