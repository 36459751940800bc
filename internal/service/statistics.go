package service

import (
	"context"
	"fmt"

	"github.com/mil-can/milcan-api/internal/domain"
)

type StatisticsRepository interface {
	Get(ctx context.Context) (domain.Statistics, error)
	Overwrite(ctx context.Context, stats domain.Statistics) error
}

type StatisticsService struct {
	repo        StatisticsRepository
	userRepo    UserRepository
	contentRepo ContentRepository
	eventRepo   EventRepository
}

func NewStatisticsService(repo StatisticsRepository, userRepo UserRepository, contentRepo ContentRepository, eventRepo EventRepository) *StatisticsService {
	return &StatisticsService{
		repo:        repo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		eventRepo:   eventRepo,
	}
}

// GetStatistics returns the singleton row, creating it with zeros on first
// access. It does not recompute; the counts are whatever the last Recompute
// left behind.
func (s *StatisticsService) GetStatistics(ctx context.Context) (domain.Statistics, error) {
	stats, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("s.repo.Get -> %w", err)
	}

	return stats, nil
}

// Recompute rebuilds the statistics row from four fresh counts and replaces
// it wholesale. A full recompute trades a little write cost for zero drift:
// there is no incremental state that could go stale, and redundant or racing
// recomputes all converge on the authoritative tallies.
func (s *StatisticsService) Recompute(ctx context.Context) error {
	creators, err := s.userRepo.CountByRole(ctx, domain.RoleCreator)
	if err != nil {
		return fmt.Errorf("s.userRepo.CountByRole -> %w", err)
	}

	ambassadors, err := s.userRepo.CountByRole(ctx, domain.RoleAmbassador)
	if err != nil {
		return fmt.Errorf("s.userRepo.CountByRole -> %w", err)
	}

	contentPieces, err := s.contentRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("s.contentRepo.Count -> %w", err)
	}

	eventsHosted, err := s.eventRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("s.eventRepo.Count -> %w", err)
	}

	err = s.repo.Overwrite(ctx, domain.Statistics{
		Creators:      creators,
		Ambassadors:   ambassadors,
		ContentPieces: contentPieces,
		EventsHosted:  eventsHosted,
	})
	if err != nil {
		return fmt.Errorf("s.repo.Overwrite -> %w", err)
	}

	return nil
}
