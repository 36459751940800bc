package repository

import (
	"context"
	"fmt"

	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository/dao"
)

var ErrContentNotFound = dao.ErrContentNotFound

type ContentDAO interface {
	Insert(ctx context.Context, content dao.Content) (dao.Content, error)
	FindByID(ctx context.Context, id uint) (dao.Content, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Content, error)
	UpdateEngagement(ctx context.Context, id uint, updates map[string]interface{}) error
	Count(ctx context.Context) (int64, error)
}

type ContentRepository struct {
	dao ContentDAO
}

func NewContentRepository(dao ContentDAO) *ContentRepository {
	return &ContentRepository{
		dao: dao,
	}
}

func (r *ContentRepository) Create(ctx context.Context, content domain.Content) (domain.Content, error) {
	created, err := r.dao.Insert(ctx, dao.Content{
		UserID:      content.UserID,
		Title:       content.Title,
		Description: content.Description,
		Category:    content.Category,
		Type:        content.Type,
		ContentURL:  content.ContentURL,
		Views:       content.Views,
		Likes:       content.Likes,
		Comments:    content.Comments,
	})
	if err != nil {
		return domain.Content{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ContentRepository) FindByID(ctx context.Context, id uint) (domain.Content, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Content{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FindByUser returns the user's complete content history, newest first.
func (r *ContentRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Content, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	contents := make([]domain.Content, 0, len(found))
	for _, c := range found {
		contents = append(contents, r.daoToDomain(c))
	}

	return contents, nil
}

// UpdateEngagement applies the non-nil counters. Counters absent from the
// request stay untouched.
func (r *ContentRepository) UpdateEngagement(ctx context.Context, id uint, views, likes, comments *int) error {
	updates := map[string]interface{}{}
	if views != nil {
		updates["views"] = *views
	}
	if likes != nil {
		updates["likes"] = *likes
	}
	if comments != nil {
		updates["comments"] = *comments
	}

	if err := r.dao.UpdateEngagement(ctx, id, updates); err != nil {
		return fmt.Errorf("r.dao.UpdateEngagement -> %w", err)
	}

	return nil
}

func (r *ContentRepository) Count(ctx context.Context) (int, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return int(count), nil
}

func (r *ContentRepository) daoToDomain(c dao.Content) domain.Content {
	return domain.Content{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Type:        c.Type,
		ContentURL:  c.ContentURL,
		Views:       c.Views,
		Likes:       c.Likes,
		Comments:    c.Comments,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
