package releases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	releaseRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/release"
)

// Service сервис для работы с desk releases: список и восстановление
// закрепления. Создание идет через usecase create_release.
type Service struct {
	releaseRepo  ReleaseRepository
	deskRepo     DeskRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса releases
func NewService(releaseRepo ReleaseRepository, deskRepo DeskRepository, logger Logger) *Service {
	return &Service{
		releaseRepo:  releaseRepo,
		deskRepo:     deskRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListUpcoming получает releases стола с сегодняшней даты и позже,
// отсортированные по дате по возрастанию
func (s *Service) ListUpcoming(ctx context.Context, deskID int64) (*ReleaseListResponse, error) {
	s.logger.Info("ListUpcoming: fetching releases for desk=%d", deskID)

	if _, err := s.deskRepo.GetByID(ctx, deskID); err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			s.logger.Warn("ListUpcoming: desk id=%d not found", deskID)
			return nil, ErrDeskNotFound
		}
		s.logger.Error("ListUpcoming: failed to get desk id=%d: %v", deskID, err)
		return nil, fmt.Errorf("%w: ListUpcoming - failed to get desk: %v", ErrInternal, err)
	}

	today := domain.DateOnly(s.timeProvider.Now())

	rels, err := s.releaseRepo.ListUpcoming(ctx, deskID, today)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error for desk=%d: %v", deskID, err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: fetched %d releases for desk=%d", len(rels), deskID)
	return FromDomainReleaseList(rels), nil
}

// Delete удаляет release для пары (стол, дата), восстанавливая
// закрепление стола на этот день
func (s *Service) Delete(ctx context.Context, deskID int64, date time.Time) error {
	normalized := domain.DateOnly(date)
	s.logger.Info("Delete: removing release for desk=%d on %s",
		deskID, normalized.Format(domain.DateFormat))

	if err := s.releaseRepo.Delete(ctx, deskID, normalized); err != nil {
		if errors.Is(err, releaseRepo.ErrReleaseNotFound) {
			s.logger.Warn("Delete: no release for desk=%d on %s",
				deskID, normalized.Format(domain.DateFormat))
			return ErrReleaseNotFound
		}
		s.logger.Error("Delete: repository error for desk=%d: %v", deskID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: release removed for desk=%d on %s",
		deskID, normalized.Format(domain.DateFormat))
	return nil
}
