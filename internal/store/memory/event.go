package memory

import (
	"context"
	"sort"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

type eventStore struct{ h dataHolder }

func (d *data) eventByIdentity(name, typ string) (models.Event, bool) {
	for _, e := range d.events {
		if e.Name == name && e.Type == typ {
			return e, true
		}
	}
	return models.Event{}, false
}

func (s eventStore) Create(ctx context.Context, e *models.Event) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.eventByIdentity(e.Name, e.Type); ok {
			return store.ErrConflict
		}
		d.lastEventID++
		e.ID = d.lastEventID
		d.events[e.ID] = *e
		return nil
	})
}

func (s eventStore) FetchAll(ctx context.Context) ([]models.Event, error) {
	out := []models.Event{}
	err := s.h.with(func(d *data) error {
		for _, e := range d.events {
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s eventStore) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	var out models.Event
	err := s.h.with(func(d *data) error {
		e, ok := d.events[id]
		if !ok {
			return store.ErrNotFound
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s eventStore) FindOrCreate(ctx context.Context, e *models.Event) (*models.Event, error) {
	var out models.Event
	err := s.h.with(func(d *data) error {
		if existing, ok := d.eventByIdentity(e.Name, e.Type); ok {
			out = existing
			return nil
		}
		d.lastEventID++
		out = models.Event{ID: d.lastEventID, Name: e.Name, Type: e.Type, Description: e.Description}
		d.events[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s eventStore) Update(ctx context.Context, e *models.Event) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.events[e.ID]; !ok {
			return store.ErrNotFound
		}
		if other, ok := d.eventByIdentity(e.Name, e.Type); ok && other.ID != e.ID {
			return store.ErrConflict
		}
		d.events[e.ID] = *e
		return nil
	})
}

func (s eventStore) Delete(ctx context.Context, id int64) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.events[id]; !ok {
			return store.ErrNotFound
		}
		// Tracking plans keep referencing the row; refuse like a foreign key
		// constraint would.
		for _, pe := range d.planEvents {
			if pe.EventID == id {
				return store.ErrConflict
			}
		}
		delete(d.events, id)
		return nil
	})
}
