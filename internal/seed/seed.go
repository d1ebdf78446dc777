package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/ptr"
)

const defaultOfficeID = 1

// Seeder заполняет пустую базу стартовыми данными для локальной разработки
type Seeder struct {
	deskRepo  DeskRepository
	staffRepo StaffRepository
	logger    Logger
}

// NewSeeder создает новый seeder
func NewSeeder(deskRepo DeskRepository, staffRepo StaffRepository, logger Logger) *Seeder {
	return &Seeder{
		deskRepo:  deskRepo,
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// Run создает стартовых сотрудников и столы, если офис еще пуст.
// Повторный запуск с заполненной базой ничего не меняет.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.deskRepo.ListByOffice(ctx, defaultOfficeID)
	if err != nil {
		return fmt.Errorf("seed: failed to check existing desks: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("Seed skipped: office %d already has %d desks", defaultOfficeID, len(existing))
		return nil
	}

	staff := []*domain.StaffMember{
		{ID: uuid.New(), Name: "Alice Johnson", Email: "alice.johnson@example.com", Active: true, Role: domain.RoleManager},
		{ID: uuid.New(), Name: "Bob Smith", Email: "bob.smith@example.com", Active: true, Role: domain.RoleEmployee},
		{ID: uuid.New(), Name: "Carol Diaz", Email: "carol.diaz@example.com", Active: true, Role: domain.RoleEmployee},
	}

	for _, member := range staff {
		if _, err := s.staffRepo.Create(ctx, member); err != nil {
			return fmt.Errorf("seed: failed to create staff member %s: %w", member.Email, err)
		}
	}

	desks := []*domain.Desk{
		{OfficeID: defaultOfficeID, Label: "A-01", Type: domain.DeskTypeStandard, ReservedFor: ptr.Ptr(staff[0].ID)},
		{OfficeID: defaultOfficeID, Label: "A-02", Type: domain.DeskTypeStandard},
		{OfficeID: defaultOfficeID, Label: "A-03", Type: domain.DeskTypeStanding},
		{OfficeID: defaultOfficeID, Label: "B-01", Type: domain.DeskTypeHighSeat},
		{OfficeID: defaultOfficeID, Label: "MR-1", Type: domain.DeskTypeMeetingRoom},
	}

	for _, desk := range desks {
		if _, err := s.deskRepo.Create(ctx, desk); err != nil {
			return fmt.Errorf("seed: failed to create desk %s: %w", desk.Label, err)
		}
	}

	s.logger.Info("Seed completed: %d staff members, %d desks in office %d",
		len(staff), len(desks), defaultOfficeID)
	return nil
}
