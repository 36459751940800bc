package repository

import (
	"context"
	"fmt"

	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository/dao"
)

type BadgeDAO interface {
	FindAll(ctx context.Context) ([]dao.Badge, error)
	FindUserBadges(ctx context.Context, userID uint) ([]dao.UserBadge, error)
	InsertUserBadge(ctx context.Context, userID, badgeID uint) error
	UserBadgeExists(ctx context.Context, userID, badgeID uint) (bool, error)
}

type BadgeRepository struct {
	dao BadgeDAO
}

func NewBadgeRepository(dao BadgeDAO) *BadgeRepository {
	return &BadgeRepository{
		dao: dao,
	}
}

func (r *BadgeRepository) FindAll(ctx context.Context) ([]domain.Badge, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	badges := make([]domain.Badge, 0, len(found))
	for _, b := range found {
		badges = append(badges, r.daoToDomain(b))
	}

	return badges, nil
}

func (r *BadgeRepository) FindUserBadges(ctx context.Context, userID uint) ([]domain.UserBadge, error) {
	found, err := r.dao.FindUserBadges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindUserBadges -> %w", err)
	}

	userBadges := make([]domain.UserBadge, 0, len(found))
	for _, ub := range found {
		userBadges = append(userBadges, domain.UserBadge{
			ID:       ub.ID,
			UserID:   ub.UserID,
			BadgeID:  ub.BadgeID,
			EarnedAt: ub.EarnedAt,
			Badge:    r.daoToDomain(ub.Badge),
		})
	}

	return userBadges, nil
}

// Award records that the user earned the badge, first-write-wins. An already
// existing pair is a no-op, never an error.
func (r *BadgeRepository) Award(ctx context.Context, userID, badgeID uint) error {
	exists, err := r.dao.UserBadgeExists(ctx, userID, badgeID)
	if err != nil {
		return fmt.Errorf("r.dao.UserBadgeExists -> %w", err)
	}
	if exists {
		return nil
	}

	if err := r.dao.InsertUserBadge(ctx, userID, badgeID); err != nil {
		return fmt.Errorf("r.dao.InsertUserBadge -> %w", err)
	}

	return nil
}

func (r *BadgeRepository) daoToDomain(b dao.Badge) domain.Badge {
	var role *domain.Role
	if b.Role != nil {
		v := domain.Role(*b.Role)
		role = &v
	}

	return domain.Badge{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		Icon:           b.Icon,
		Requirement:    b.Requirement,
		RequiredPoints: b.RequiredPoints,
		Role:           role,
		PredicateKey:   domain.PredicateKey(b.PredicateKey),
		CreatedAt:      b.CreatedAt,
	}
}
