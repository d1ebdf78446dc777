package create_release

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
)

// UseCase use case освобождения закрепленного стола на одну дату.
// Операция идемпотентна: повторный запрос для той же пары (стол, дата)
// возвращает существующий release без ошибки.
type UseCase struct {
	deskRepo    DeskRepository
	releaseRepo ReleaseRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	deskRepo DeskRepository,
	releaseRepo ReleaseRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		deskRepo:    deskRepo,
		releaseRepo: releaseRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Request модель запроса на создание release
type Request struct {
	DeskID int64
	Date   time.Time
}

// Response модель ответа с созданным (или уже существовавшим) release
type Response struct {
	ID          int64
	DeskID      int64
	ReleaseDate time.Time
	CreatedAt   time.Time
}

// Execute выполняет use case создания release
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRelease: desk=%d, date=%s", req.DeskID, req.Date.Format(domain.DateFormat))

	if req.DeskID <= 0 {
		return nil, fmt.Errorf("%w: deskID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateOnly(req.Date)

	var result *domain.DeskRelease

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		desk, err := uc.deskRepo.GetByID(txCtx, req.DeskID)
		if err != nil {
			if errors.Is(err, deskRepo.ErrDeskNotFound) {
				uc.logger.Warn("CreateRelease: desk id=%d not found", req.DeskID)
				return ErrDeskNotFound
			}
			uc.logger.Error("CreateRelease: failed to get desk id=%d: %v", req.DeskID, err)
			return fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
		}

		if !desk.IsReservedDesk() {
			uc.logger.Warn("CreateRelease: desk id=%d has no permanent reservation", req.DeskID)
			return ErrDeskNotReserved
		}

		rel, err := uc.releaseRepo.Create(txCtx, req.DeskID, date)
		if err != nil {
			uc.logger.Error("CreateRelease: failed to create release for desk=%d: %v", req.DeskID, err)
			return fmt.Errorf("%w: failed to create release: %v", ErrInternal, err)
		}

		result = rel
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateRelease: release id=%d for desk=%d on %s",
		result.ID, result.DeskID, result.ReleaseDate.Format(domain.DateFormat))

	return &Response{
		ID:          result.ID,
		DeskID:      result.DeskID,
		ReleaseDate: result.ReleaseDate,
		CreatedAt:   result.CreatedAt,
	}, nil
}
