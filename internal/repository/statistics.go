package repository

import (
	"context"
	"fmt"

	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository/dao"
)

type StatisticsDAO interface {
	GetOrCreate(ctx context.Context) (dao.Statistics, error)
	Overwrite(ctx context.Context, stats dao.Statistics) error
}

type StatisticsRepository struct {
	dao StatisticsDAO
}

func NewStatisticsRepository(dao StatisticsDAO) *StatisticsRepository {
	return &StatisticsRepository{
		dao: dao,
	}
}

func (r *StatisticsRepository) Get(ctx context.Context) (domain.Statistics, error) {
	stats, err := r.dao.GetOrCreate(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("r.dao.GetOrCreate -> %w", err)
	}

	return domain.Statistics{
		ID:            stats.ID,
		Creators:      stats.Creators,
		Ambassadors:   stats.Ambassadors,
		ContentPieces: stats.ContentPieces,
		EventsHosted:  stats.EventsHosted,
		UpdatedAt:     stats.UpdatedAt,
	}, nil
}

func (r *StatisticsRepository) Overwrite(ctx context.Context, stats domain.Statistics) error {
	err := r.dao.Overwrite(ctx, dao.Statistics{
		Creators:      stats.Creators,
		Ambassadors:   stats.Ambassadors,
		ContentPieces: stats.ContentPieces,
		EventsHosted:  stats.EventsHosted,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Overwrite -> %w", err)
	}

	return nil
}
