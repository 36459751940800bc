package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Statistics struct {
	ID uint `gorm:"primaryKey"`

	Creators      int `gorm:"not null;default:0"`
	Ambassadors   int `gorm:"not null;default:0"`
	ContentPieces int `gorm:"not null;default:0"`
	EventsHosted  int `gorm:"not null;default:0"`

	UpdatedAt time.Time `gorm:"not null"`
}

type StatisticsDAO struct {
	db *gorm.DB
}

func NewStatisticsDAO(db *gorm.DB) *StatisticsDAO {
	return &StatisticsDAO{
		db: db,
	}
}

// GetOrCreate returns the singleton row, creating it with zero counts the
// first time it is asked for.
func (d *StatisticsDAO) GetOrCreate(ctx context.Context) (Statistics, error) {
	var stats Statistics

	result := d.db.WithContext(ctx).Limit(1).Find(&stats)
	if result.Error != nil {
		return Statistics{}, result.Error
	}
	if result.RowsAffected > 0 {
		return stats, nil
	}

	stats = Statistics{}
	if err := d.db.WithContext(ctx).Create(&stats).Error; err != nil {
		return Statistics{}, err
	}

	return stats, nil
}

// Overwrite replaces the singleton's counts wholesale. The row is never
// patched field by field, so a racing writer can only ever leave a complete,
// internally consistent snapshot behind.
func (d *StatisticsDAO) Overwrite(ctx context.Context, stats Statistics) error {
	current, err := d.GetOrCreate(ctx)
	if err != nil {
		return err
	}

	result := d.db.WithContext(ctx).Model(&Statistics{}).
		Where("id = ?", current.ID).
		Updates(map[string]interface{}{
			"creators":       stats.Creators,
			"ambassadors":    stats.Ambassadors,
			"content_pieces": stats.ContentPieces,
			"events_hosted":  stats.EventsHosted,
			"updated_at":     time.Now(),
		})

	return result.Error
}
