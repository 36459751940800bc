package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mil-can/milcan-api/internal/config"
	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository"
)

var (
	ErrContentNotFound = repository.ErrContentNotFound
	ErrNotContentOwner = errors.New("content belongs to another user")
)

type ContentRepository interface {
	Create(ctx context.Context, content domain.Content) (domain.Content, error)
	FindByID(ctx context.Context, id uint) (domain.Content, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Content, error)
	UpdateEngagement(ctx context.Context, id uint, views, likes, comments *int) error
	Count(ctx context.Context) (int, error)
}

// BadgeAwarder runs the achievement engine for one user.
type BadgeAwarder interface {
	EvaluateAndAward(ctx context.Context, userID uint) error
}

// StatsRecomputer rebuilds the platform statistics from fresh counts.
type StatsRecomputer interface {
	Recompute(ctx context.Context) error
}

type ContentService struct {
	repo     ContentRepository
	userRepo UserRepository
	badges   BadgeAwarder
	stats    StatsRecomputer
	points   int
}

func NewContentService(repo ContentRepository, userRepo UserRepository, badges BadgeAwarder, stats StatsRecomputer, conf *config.PointsConfig) *ContentService {
	return &ContentService{
		repo:     repo,
		userRepo: userRepo,
		badges:   badges,
		stats:    stats,
		points:   conf.Content,
	}
}

// CreateContent persists the submission and then runs the rest of the chain
// in order: point grant, badge evaluation, statistics recompute. The steps
// are sequential and there is no cross-step rollback; a failure after
// persistence surfaces to the caller while the new row stays. Ordering
// matters: the badge engine must see the just-created row as part of the
// user's history.
func (s *ContentService) CreateContent(ctx context.Context, content domain.Content) (domain.Content, error) {
	created, err := s.repo.Create(ctx, content)
	if err != nil {
		return domain.Content{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if err := s.userRepo.AddPoints(ctx, created.UserID, s.points); err != nil {
		return domain.Content{}, fmt.Errorf("s.userRepo.AddPoints -> %w", err)
	}

	if err := s.badges.EvaluateAndAward(ctx, created.UserID); err != nil {
		return domain.Content{}, fmt.Errorf("s.badges.EvaluateAndAward -> %w", err)
	}

	if err := s.stats.Recompute(ctx); err != nil {
		return domain.Content{}, fmt.Errorf("s.stats.Recompute -> %w", err)
	}

	return created, nil
}

func (s *ContentService) GetContentByUser(ctx context.Context, userID uint) ([]domain.Content, error) {
	contents, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUser -> %w", err)
	}

	return contents, nil
}

// UpdateEngagement overwrites the given engagement counters on one of the
// caller's own content pieces. It does not trigger the submission chain; the
// badge engine reads current counters on its next evaluation.
func (s *ContentService) UpdateEngagement(ctx context.Context, contentID, userID uint, views, likes, comments *int) error {
	content, err := s.repo.FindByID(ctx, contentID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if content.UserID != userID {
		return ErrNotContentOwner
	}

	if err := s.repo.UpdateEngagement(ctx, contentID, views, likes, comments); err != nil {
		return fmt.Errorf("s.repo.UpdateEngagement -> %w", err)
	}

	return nil
}
