package service

import (
	"context"
	"time"

	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository"
)

// In-memory fakes for the repository interfaces. Error fields, when set,
// are returned by the corresponding method.

type fakeUserRepo struct {
	users map[uint]domain.User

	findErr      error
	addPointsErr error
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	m := make(map[uint]domain.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}

	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	if f.findErr != nil {
		return domain.User{}, f.findErr
	}

	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) AddPoints(_ context.Context, userID uint, delta int) error {
	if f.addPointsErr != nil {
		return f.addPointsErr
	}

	user, ok := f.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.Points += delta
	f.users[userID] = user

	return nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role domain.Role) (int, error) {
	count := 0
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}

	return count, nil
}

type fakeContentRepo struct {
	contents []domain.Content
	nextID   uint

	createErr error
	findErr   error
}

func (f *fakeContentRepo) Create(_ context.Context, content domain.Content) (domain.Content, error) {
	if f.createErr != nil {
		return domain.Content{}, f.createErr
	}

	f.nextID++
	content.ID = f.nextID
	content.CreatedAt = time.Now()
	f.contents = append(f.contents, content)

	return content, nil
}

func (f *fakeContentRepo) FindByID(_ context.Context, id uint) (domain.Content, error) {
	for _, c := range f.contents {
		if c.ID == id {
			return c, nil
		}
	}

	return domain.Content{}, repository.ErrContentNotFound
}

func (f *fakeContentRepo) FindByUser(_ context.Context, userID uint) ([]domain.Content, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	var out []domain.Content
	for _, c := range f.contents {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	return out, nil
}

func (f *fakeContentRepo) UpdateEngagement(_ context.Context, id uint, views, likes, comments *int) error {
	for i, c := range f.contents {
		if c.ID != id {
			continue
		}

		if views != nil {
			c.Views = *views
		}
		if likes != nil {
			c.Likes = *likes
		}
		if comments != nil {
			c.Comments = *comments
		}
		f.contents[i] = c

		return nil
	}

	return repository.ErrContentNotFound
}

func (f *fakeContentRepo) Count(_ context.Context) (int, error) {
	return len(f.contents), nil
}

type fakeEventRepo struct {
	events []domain.Event
	nextID uint

	createErr error
}

func (f *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	if f.createErr != nil {
		return domain.Event{}, f.createErr
	}

	f.nextID++
	event.ID = f.nextID
	event.CreatedAt = time.Now()
	f.events = append(f.events, event)

	return event, nil
}

func (f *fakeEventRepo) FindByOrganizer(_ context.Context, organizerID uint) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (f *fakeEventRepo) FindActive(_ context.Context) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		if e.Status == domain.EventStatusActive {
			out = append(out, e)
		}
	}

	return out, nil
}

func (f *fakeEventRepo) Count(_ context.Context) (int, error) {
	return len(f.events), nil
}

type fakeBadgeRepo struct {
	catalog []domain.Badge
	awarded map[uint][]uint // userID -> badge IDs in award order

	awardErrs map[uint]error // badgeID -> error to return from Award
}

func newFakeBadgeRepo(catalog ...domain.Badge) *fakeBadgeRepo {
	return &fakeBadgeRepo{
		catalog: catalog,
		awarded: make(map[uint][]uint),
	}
}

func (f *fakeBadgeRepo) FindAll(_ context.Context) ([]domain.Badge, error) {
	return f.catalog, nil
}

func (f *fakeBadgeRepo) FindUserBadges(_ context.Context, userID uint) ([]domain.UserBadge, error) {
	var out []domain.UserBadge
	for i, badgeID := range f.awarded[userID] {
		out = append(out, domain.UserBadge{
			ID:      uint(i + 1),
			UserID:  userID,
			BadgeID: badgeID,
		})
	}

	return out, nil
}

func (f *fakeBadgeRepo) Award(_ context.Context, userID, badgeID uint) error {
	if err, ok := f.awardErrs[badgeID]; ok {
		return err
	}

	// First write wins, matching the unique index semantics.
	for _, id := range f.awarded[userID] {
		if id == badgeID {
			return nil
		}
	}
	f.awarded[userID] = append(f.awarded[userID], badgeID)

	return nil
}

type fakeStatsRepo struct {
	stats domain.Statistics

	overwriteErr error
}

func (f *fakeStatsRepo) Get(_ context.Context) (domain.Statistics, error) {
	if f.stats.ID == 0 {
		f.stats = domain.Statistics{ID: 1, UpdatedAt: time.Now()}
	}

	return f.stats, nil
}

func (f *fakeStatsRepo) Overwrite(_ context.Context, stats domain.Statistics) error {
	if f.overwriteErr != nil {
		return f.overwriteErr
	}

	stats.ID = 1
	stats.UpdatedAt = time.Now()
	f.stats = stats

	return nil
}

type fakeAuthRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{byEmail: make(map[string]domain.User)}
}

func (f *fakeAuthRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := f.byEmail[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}

	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = user

	return user, nil
}

func (f *fakeAuthRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

// chainRecorder stands in for BadgeAwarder and StatsRecomputer and records
// the order of chain steps.
type chainRecorder struct {
	steps []string

	evaluateErr  error
	recomputeErr error
}

func (c *chainRecorder) EvaluateAndAward(_ context.Context, _ uint) error {
	c.steps = append(c.steps, "evaluate")
	return c.evaluateErr
}

func (c *chainRecorder) Recompute(_ context.Context) error {
	c.steps = append(c.steps, "recompute")
	return c.recomputeErr
}
