package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository"
)

type BadgeRepository interface {
	FindAll(ctx context.Context) ([]domain.Badge, error)
	FindUserBadges(ctx context.Context, userID uint) ([]domain.UserBadge, error)
	Award(ctx context.Context, userID, badgeID uint) error
}

// BadgeService is the achievement award engine. It evaluates the fixed
// catalog of predicates against a user's complete content and event history
// and awards whatever the user newly qualifies for.
type BadgeService struct {
	repo        BadgeRepository
	userRepo    UserRepository
	contentRepo ContentRepository
	eventRepo   EventRepository
}

func NewBadgeService(repo BadgeRepository, userRepo UserRepository, contentRepo ContentRepository, eventRepo EventRepository) *BadgeService {
	return &BadgeService{
		repo:        repo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		eventRepo:   eventRepo,
	}
}

func (s *BadgeService) GetCatalog(ctx context.Context) ([]domain.Badge, error) {
	badges, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return badges, nil
}

func (s *BadgeService) GetUserBadges(ctx context.Context, userID uint) ([]domain.UserBadge, error) {
	userBadges, err := s.repo.FindUserBadges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindUserBadges -> %w", err)
	}

	return userBadges, nil
}

// EvaluateAndAward awards every catalog badge the user qualifies for but has
// not yet earned. A missing user is a no-op, not an error: the submission
// chain that calls this must never fail just because the user row vanished
// between persisting and evaluating.
//
// The evaluation is re-entrant and idempotent. Running it twice against
// unchanged data awards nothing the second time: earned badges are skipped up
// front and Award itself is first-write-wins. A failure to load data aborts
// the whole pass; a failure to award one badge is logged and does not stop
// the remaining badges.
func (s *BadgeService) EvaluateAndAward(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	contents, err := s.contentRepo.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("s.contentRepo.FindByUser -> %w", err)
	}

	events, err := s.eventRepo.FindByOrganizer(ctx, userID)
	if err != nil {
		return fmt.Errorf("s.eventRepo.FindByOrganizer -> %w", err)
	}

	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	earnedBadges, err := s.repo.FindUserBadges(ctx, userID)
	if err != nil {
		return fmt.Errorf("s.repo.FindUserBadges -> %w", err)
	}

	earned := make(map[uint]bool, len(earnedBadges))
	for _, ub := range earnedBadges {
		earned[ub.BadgeID] = true
	}

	for _, badge := range catalog {
		if earned[badge.ID] {
			continue
		}
		if badge.Role != nil && *badge.Role != user.Role {
			continue
		}
		if !qualifies(badge.PredicateKey, user, contents, events) {
			continue
		}

		if err := s.repo.Award(ctx, userID, badge.ID); err != nil {
			zap.L().Warn("failed to award badge",
				zap.Uint("userID", userID),
				zap.Uint("badgeID", badge.ID),
				zap.String("badge", badge.Name),
				zap.Error(err))
		}
	}

	return nil
}

// qualifies evaluates the closed predicate set. Every rule looks at the
// user's full accumulated history, never at the triggering action alone.
// An unknown key never qualifies.
func qualifies(key domain.PredicateKey, user domain.User, contents []domain.Content, events []domain.Event) bool {
	switch key {
	case domain.PredicateFirstContent:
		return len(contents) >= 1
	case domain.PredicateViralContent:
		for _, c := range contents {
			if c.Views >= 1000 {
				return true
			}
		}
		return false
	case domain.PredicateContentVolume:
		return len(contents) >= 50
	case domain.PredicateCumulativeLikes:
		likes := 0
		for _, c := range contents {
			likes += c.Likes
		}
		return likes >= 100
	case domain.PredicateMentorship:
		return user.Role == domain.RoleAmbassador && len(contents) >= 5
	case domain.PredicateEventCountTier1:
		return len(events) >= 10
	case domain.PredicateEventParticipation:
		participants := 0
		for _, e := range events {
			participants += e.Participants
		}
		return participants >= 50
	case domain.PredicateEventCountTier2:
		return len(events) >= 25
	case domain.PredicateEventCountTier3:
		return len(events) >= 100
	default:
		return false
	}
}
