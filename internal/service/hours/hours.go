package hours

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/entities"
)

// Service держит последнее расписание филиала и отвечает из кэша.
type Service struct {
	repository Repository
	branchID   int64

	mu        sync.RWMutex
	schedule  *entities.WeeklyOperatingHours
	refreshed time.Time
}

func New(repository Repository, branchID int64) *Service {
	return &Service{
		repository: repository,
		branchID:   branchID,
	}
}

// Refresh перечитывает расписание. При ошибке старое расписание остаётся.
// Нет филиала или operating_hours = null: расписание сбрасывается в nil, ресторан считается открытым.
func (s *Service) Refresh(ctx context.Context) error {
	schedule, err := s.repository.GetOperatingHours(ctx, s.branchID)
	if err != nil && !errors.Is(err, ErrBranchNotFound) {
		return fmt.Errorf("refresh operating hours: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedule = schedule
	s.refreshed = time.Now()
	return nil
}

func (s *Service) Status(at time.Time) entities.OpenStatus {
	return Evaluate(s.Schedule(), at)
}

func (s *Service) Display() string {
	return Display(s.Schedule())
}

// Schedule копия текущего расписания, nil если не задано.
func (s *Service) Schedule() *entities.WeeklyOperatingHours {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.schedule == nil {
		return nil
	}

	schedule := make(entities.WeeklyOperatingHours, len(*s.schedule))
	for day, hours := range *s.schedule {
		schedule[day] = hours
	}
	return &schedule
}

func (s *Service) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshed
}
