// Package catalog holds the service layer: direct CRUD for events and
// properties, and the tracking-plan reconciliation logic that composes them.
package catalog

import (
	"context"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

// EventService provides direct CRUD over the event catalog.
type EventService struct {
	store store.Interface
}

func NewEventService(st store.Interface) *EventService {
	return &EventService{store: st}
}

func (s *EventService) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	e := &models.Event{Name: req.Name, Type: req.Type, Description: req.Description}
	if err := s.store.Events().Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.store.Events().FetchAll(ctx)
}

func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.store.Events().FindByID(ctx, id)
}

// Update is a partial update: absent fields keep their stored value.
func (s *EventService) Update(ctx context.Context, id int64, req models.UpdateEventRequest) (*models.Event, error) {
	e, err := s.store.Events().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Type != nil {
		e.Type = *req.Type
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if err := s.store.Events().Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.store.Events().Delete(ctx, id)
}
