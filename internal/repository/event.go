package repository

import (
	"context"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	FindFirst(ctx context.Context) (dao.Event, error)
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) FindFirst(ctx context.Context) (domain.Event, error) {
	found, err := r.dao.FindFirst(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindFirst -> %w", err)
	}

	return eventDAOToDomain(found), nil
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, dao.Event{
		Name:        event.Name,
		Slogan:      event.Slogan,
		Venue:       event.Venue,
		DateStart:   event.DateStart,
		DateEnd:     event.DateEnd,
		Description: event.Description,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDAOToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, dao.Event{
		ID:          event.ID,
		Name:        event.Name,
		Slogan:      event.Slogan,
		Venue:       event.Venue,
		DateStart:   event.DateStart,
		DateEnd:     event.DateEnd,
		Description: event.Description,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventDAOToDomain(updated), nil
}
