package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Badge struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string
	Icon        string `gorm:"not null"`
	Requirement string

	RequiredPoints int     `gorm:"not null;default:0"`
	Role           *string // nil means both roles are eligible

	// PredicateKey binds the catalog entry to its award rule. Stable,
	// independent of the display name.
	PredicateKey string `gorm:"not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null"`
}

// UserBadge has a composite unique index on (user_id, badge_id). The index
// is the authoritative guard against double awards; the engine's existence
// check is an optimization on top of it.
type UserBadge struct {
	ID uint `gorm:"primaryKey"`

	UserID  uint  `gorm:"not null;uniqueIndex:idx_user_badge"`
	BadgeID uint  `gorm:"not null;uniqueIndex:idx_user_badge"`
	Badge   Badge `gorm:"foreignKey:BadgeID"`

	EarnedAt time.Time `gorm:"not null"`
}

type BadgeDAO struct {
	db *gorm.DB
}

func NewBadgeDAO(db *gorm.DB) *BadgeDAO {
	return &BadgeDAO{
		db: db,
	}
}

func (d *BadgeDAO) FindAll(ctx context.Context) ([]Badge, error) {
	var badges []Badge

	result := d.db.WithContext(ctx).Find(&badges)
	if result.Error != nil {
		return nil, result.Error
	}

	return badges, nil
}

func (d *BadgeDAO) FindUserBadges(ctx context.Context, userID uint) ([]UserBadge, error) {
	var userBadges []UserBadge

	result := d.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Find(&userBadges)
	if result.Error != nil {
		return nil, result.Error
	}

	return userBadges, nil
}

// InsertUserBadge awards a badge unconditionally. Callers check for an
// existing pair first; if two evaluations race anyway, the unique index turns
// the loser into a harmless no-op here.
func (d *BadgeDAO) InsertUserBadge(ctx context.Context, userID, badgeID uint) error {
	userBadge := UserBadge{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: time.Now(),
	}

	result := d.db.WithContext(ctx).Create(&userBadge)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return nil
		}

		return result.Error
	}

	return nil
}

func (d *BadgeDAO) UserBadgeExists(ctx context.Context, userID, badgeID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&UserBadge{}).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
