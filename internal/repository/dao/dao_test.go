package dao

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDAOIntegration spins up a disposable Postgres container and exercises
// the DAO layer against it. Set MILCAN_INTEGRATION=1 to run; without Docker
// the test is skipped.
func TestDAOIntegration(t *testing.T) {
	if os.Getenv("MILCAN_INTEGRATION") == "" {
		t.Skip("set MILCAN_INTEGRATION=1 to run the Docker-backed DAO tests")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=milcan",
		"POSTGRES_PASSWORD=milcan",
		"POSTGRES_DB=milcan_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	var db *gorm.DB
	err = pool.Retry(func() error {
		dsn := fmt.Sprintf("host=localhost port=%v user=milcan password=milcan dbname=milcan_test sslmode=disable",
			resource.GetPort("5432/tcp"))

		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))
	require.NoError(t, SeedReferenceData(db))

	ctx := context.Background()

	t.Run("user insert and duplicate email", func(t *testing.T) {
		userDAO := NewUserDAO(db)

		created, err := userDAO.Insert(ctx, User{
			Email:    "alex@example.com",
			Password: "hashed",
			Role:     "creator",
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		_, err = userDAO.Insert(ctx, User{
			Email:    "alex@example.com",
			Password: "hashed",
			Role:     "ambassador",
		})
		assert.ErrorIs(t, err, ErrUserEmailExists)
	})

	t.Run("add points", func(t *testing.T) {
		userDAO := NewUserDAO(db)

		user, err := userDAO.FindByEmail(ctx, "alex@example.com")
		require.NoError(t, err)

		require.NoError(t, userDAO.AddPoints(ctx, user.ID, 10))
		require.NoError(t, userDAO.AddPoints(ctx, user.ID, 25))

		updated, err := userDAO.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 35, updated.Points)

		assert.ErrorIs(t, userDAO.AddPoints(ctx, 999999, 10), ErrUserNotFound)
	})

	t.Run("badge catalog seeded once", func(t *testing.T) {
		badgeDAO := NewBadgeDAO(db)

		badges, err := badgeDAO.FindAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, badges)

		// Seeding again must not duplicate the catalog.
		require.NoError(t, SeedReferenceData(db))

		again, err := badgeDAO.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, again, len(badges))
	})

	t.Run("double award is a no-op", func(t *testing.T) {
		userDAO := NewUserDAO(db)
		badgeDAO := NewBadgeDAO(db)

		user, err := userDAO.FindByEmail(ctx, "alex@example.com")
		require.NoError(t, err)

		badges, err := badgeDAO.FindAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, badges)

		require.NoError(t, badgeDAO.InsertUserBadge(ctx, user.ID, badges[0].ID))
		require.NoError(t, badgeDAO.InsertUserBadge(ctx, user.ID, badges[0].ID))

		userBadges, err := badgeDAO.FindUserBadges(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, userBadges, 1)
		assert.Equal(t, badges[0].Name, userBadges[0].Badge.Name)
	})

	t.Run("statistics singleton", func(t *testing.T) {
		statsDAO := NewStatisticsDAO(db)

		first, err := statsDAO.GetOrCreate(ctx)
		require.NoError(t, err)
		assert.NotZero(t, first.ID)

		require.NoError(t, statsDAO.Overwrite(ctx, Statistics{
			Creators:      1,
			Ambassadors:   0,
			ContentPieces: 3,
			EventsHosted:  2,
		}))

		second, err := statsDAO.GetOrCreate(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, second.Creators)
		assert.Equal(t, 3, second.ContentPieces)
		assert.Equal(t, 2, second.EventsHosted)
	})
}
