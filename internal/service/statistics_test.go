package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mil-can/milcan-api/internal/domain"
)

func TestGetStatistics_LazyInit(t *testing.T) {
	svc := NewStatisticsService(&fakeStatsRepo{}, newFakeUserRepo(), &fakeContentRepo{}, &fakeEventRepo{})

	stats, err := svc.GetStatistics(context.Background())

	require.NoError(t, err)
	assert.NotZero(t, stats.ID)
	assert.Zero(t, stats.Creators)
	assert.Zero(t, stats.Ambassadors)
	assert.Zero(t, stats.ContentPieces)
	assert.Zero(t, stats.EventsHosted)
}

func TestRecompute(t *testing.T) {
	userRepo := newFakeUserRepo(
		domain.User{ID: 1, Role: domain.RoleCreator},
		domain.User{ID: 2, Role: domain.RoleCreator},
		domain.User{ID: 3, Role: domain.RoleAmbassador},
	)
	contentRepo := &fakeContentRepo{contents: []domain.Content{
		{ID: 1, UserID: 1}, {ID: 2, UserID: 2}, {ID: 3, UserID: 1}, {ID: 4, UserID: 2},
	}}
	eventRepo := &fakeEventRepo{events: []domain.Event{
		{ID: 1, OrganizerID: 3},
	}}
	statsRepo := &fakeStatsRepo{}

	svc := NewStatisticsService(statsRepo, userRepo, contentRepo, eventRepo)

	require.NoError(t, svc.Recompute(context.Background()))

	stats, err := svc.GetStatistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Creators)
	assert.Equal(t, 1, stats.Ambassadors)
	assert.Equal(t, 4, stats.ContentPieces)
	assert.Equal(t, 1, stats.EventsHosted)
}

func TestRecompute_RedundantRunsConverge(t *testing.T) {
	userRepo := newFakeUserRepo(domain.User{ID: 1, Role: domain.RoleCreator})
	contentRepo := &fakeContentRepo{contents: []domain.Content{{ID: 1, UserID: 1}}}
	statsRepo := &fakeStatsRepo{}

	svc := NewStatisticsService(statsRepo, userRepo, contentRepo, &fakeEventRepo{})

	require.NoError(t, svc.Recompute(context.Background()))
	first, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Recompute(context.Background()))
	second, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Creators, second.Creators)
	assert.Equal(t, first.ContentPieces, second.ContentPieces)
	assert.Equal(t, first.EventsHosted, second.EventsHosted)
}
