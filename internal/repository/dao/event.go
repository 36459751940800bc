package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	OrganizerID uint `gorm:"not null;index"`
	Organizer   User `gorm:"foreignKey:OrganizerID"`

	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"not null"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	Participants int    `gorm:"not null;default:0"`
	Status       string `gorm:"not null;default:'active'"` // "active", "completed" or "cancelled"

	CreatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByOrganizerID(ctx context.Context, organizerID uint) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindActive(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("status = ?", "active").
		Order("start_date DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Event{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
