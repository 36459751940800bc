package service

import (
	"context"
	"fmt"

	"github.com/mil-can/milcan-api/internal/domain"
)

type ReviewRepository interface {
	FindFeatured(ctx context.Context) ([]domain.Review, error)
}

type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{
		repo: repo,
	}
}

func (s *ReviewService) GetFeaturedReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.FindFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFeatured -> %w", err)
	}

	return reviews, nil
}
