package repository

import (
	"context"
	"fmt"

	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository/dao"
)

type ReviewDAO interface {
	FindFeatured(ctx context.Context) ([]dao.Review, error)
}

type ReviewRepository struct {
	dao ReviewDAO
}

func NewReviewRepository(dao ReviewDAO) *ReviewRepository {
	return &ReviewRepository{
		dao: dao,
	}
}

func (r *ReviewRepository) FindFeatured(ctx context.Context) ([]domain.Review, error) {
	found, err := r.dao.FindFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFeatured -> %w", err)
	}

	reviews := make([]domain.Review, 0, len(found))
	for _, rev := range found {
		reviews = append(reviews, domain.Review{
			ID:        rev.ID,
			Name:      rev.Name,
			Role:      rev.Role,
			Content:   rev.Content,
			AvatarURL: rev.AvatarURL,
			Rating:    rev.Rating,
			Featured:  rev.Featured,
			CreatedAt: rev.CreatedAt,
		})
	}

	return reviews, nil
}
