package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrContentNotFound = errors.New("content not found")

type Content struct {
	ID uint `gorm:"primaryKey"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID"`

	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"not null"` // "fact-checking", "digital-literacy" or "safety-ethics"
	Type        string `gorm:"not null"` // "post", "video" or "reel"
	ContentURL  string

	Views    int `gorm:"not null;default:0"`
	Likes    int `gorm:"not null;default:0"`
	Comments int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ContentDAO struct {
	db *gorm.DB
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{
		db: db,
	}
}

func (d *ContentDAO) Insert(ctx context.Context, content Content) (Content, error) {
	result := d.db.WithContext(ctx).Create(&content)
	if result.Error != nil {
		return Content{}, result.Error
	}

	return content, nil
}

func (d *ContentDAO) FindByID(ctx context.Context, id uint) (Content, error) {
	var content Content

	result := d.db.WithContext(ctx).First(&content, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Content{}, ErrContentNotFound
		}

		return Content{}, result.Error
	}

	return content, nil
}

func (d *ContentDAO) FindByUserID(ctx context.Context, userID uint) ([]Content, error) {
	var contents []Content

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contents)
	if result.Error != nil {
		return nil, result.Error
	}

	return contents, nil
}

// UpdateEngagement overwrites the engagement counters that are present in
// updates. Nothing else on the row is touched.
func (d *ContentDAO) UpdateEngagement(ctx context.Context, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	result := d.db.WithContext(ctx).Model(&Content{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}

	return nil
}

func (d *ContentDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Content{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
