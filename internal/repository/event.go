package repository

import (
	"context"
	"fmt"

	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByOrganizerID(ctx context.Context, organizerID uint) ([]dao.Event, error)
	FindActive(ctx context.Context) ([]dao.Event, error)
	Count(ctx context.Context) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	status := event.Status
	if status == "" {
		status = domain.EventStatusActive
	}

	created, err := r.dao.Insert(ctx, dao.Event{
		OrganizerID:  event.OrganizerID,
		Title:        event.Title,
		Description:  event.Description,
		Category:     event.Category,
		StartDate:    event.StartDate,
		EndDate:      event.EndDate,
		Participants: event.Participants,
		Status:       status,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// FindByOrganizer returns the organizer's complete event history, newest first.
func (r *EventRepository) FindByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error) {
	found, err := r.dao.FindByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOrganizerID -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) FindActive(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return int(count), nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:           e.ID,
		OrganizerID:  e.OrganizerID,
		Title:        e.Title,
		Description:  e.Description,
		Category:     e.Category,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Participants: e.Participants,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
	}
}
