package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID uint `gorm:"primaryKey"`

	Name      string `gorm:"not null"`
	Role      string `gorm:"not null"`
	Content   string `gorm:"not null"`
	AvatarURL string
	Rating    int  `gorm:"not null;default:5"`
	Featured  bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{
		db: db,
	}
}

func (d *ReviewDAO) FindFeatured(ctx context.Context) ([]Review, error) {
	var reviews []Review

	result := d.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}
