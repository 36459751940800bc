package service

import (
	"context"
	"fmt"

	"github.com/mil-can/milcan-api/internal/config"
	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error)
	FindActive(ctx context.Context) ([]domain.Event, error)
	Count(ctx context.Context) (int, error)
}

type EventService struct {
	repo     EventRepository
	userRepo UserRepository
	badges   BadgeAwarder
	stats    StatsRecomputer
	points   int
}

func NewEventService(repo EventRepository, userRepo UserRepository, badges BadgeAwarder, stats StatsRecomputer, conf *config.PointsConfig) *EventService {
	return &EventService{
		repo:     repo,
		userRepo: userRepo,
		badges:   badges,
		stats:    stats,
		points:   conf.Event,
	}
}

// CreateEvent runs the same persist → points → badges → statistics chain as
// content submission, with the larger event point grant.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if err := s.userRepo.AddPoints(ctx, created.OrganizerID, s.points); err != nil {
		return domain.Event{}, fmt.Errorf("s.userRepo.AddPoints -> %w", err)
	}

	if err := s.badges.EvaluateAndAward(ctx, created.OrganizerID); err != nil {
		return domain.Event{}, fmt.Errorf("s.badges.EvaluateAndAward -> %w", err)
	}

	if err := s.stats.Recompute(ctx); err != nil {
		return domain.Event{}, fmt.Errorf("s.stats.Recompute -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEventsByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error) {
	events, err := s.repo.FindByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOrganizer -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetActiveEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return events, nil
}
