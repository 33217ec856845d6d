package memory

import (
	"context"
	"sort"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

type trackingPlanStore struct{ h dataHolder }

// buildGraph expands a stored plan row into the full nested graph, with join
// rows ordered by id.
func (d *data) buildGraph(row models.TrackingPlan) models.TrackingPlan {
	row.Events = []models.TrackingPlanEvent{}
	for _, pe := range d.planEvents {
		if pe.TrackingPlanID != row.ID {
			continue
		}
		pe.Event = d.events[pe.EventID]
		pe.Properties = []models.TrackingPlanEventProperty{}
		for _, pep := range d.planEventProps {
			if pep.TrackingPlanEventID != pe.ID {
				continue
			}
			pep.Property = d.properties[pep.PropertyID]
			pe.Properties = append(pe.Properties, pep)
		}
		sort.Slice(pe.Properties, func(i, j int) bool { return pe.Properties[i].ID < pe.Properties[j].ID })
		row.Events = append(row.Events, pe)
	}
	sort.Slice(row.Events, func(i, j int) bool { return row.Events[i].ID < row.Events[j].ID })
	return row
}

func (s trackingPlanStore) Create(ctx context.Context, p *models.TrackingPlan) error {
	return s.h.with(func(d *data) error {
		d.lastPlanID++
		p.ID = d.lastPlanID
		d.plans[p.ID] = models.TrackingPlan{ID: p.ID, Name: p.Name, Description: p.Description}
		return nil
	})
}

func (s trackingPlanStore) FetchAll(ctx context.Context) ([]models.TrackingPlan, error) {
	out := []models.TrackingPlan{}
	err := s.h.with(func(d *data) error {
		for _, row := range d.plans {
			out = append(out, d.buildGraph(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s trackingPlanStore) FindByID(ctx context.Context, id int64) (*models.TrackingPlan, error) {
	var out models.TrackingPlan
	err := s.h.with(func(d *data) error {
		row, ok := d.plans[id]
		if !ok {
			return store.ErrNotFound
		}
		out = d.buildGraph(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s trackingPlanStore) Update(ctx context.Context, p *models.TrackingPlan) error {
	return s.h.with(func(d *data) error {
		row, ok := d.plans[p.ID]
		if !ok {
			return store.ErrNotFound
		}
		row.Name = p.Name
		row.Description = p.Description
		d.plans[p.ID] = row
		return nil
	})
}

func (s trackingPlanStore) Delete(ctx context.Context, id int64) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.plans[id]; !ok {
			return store.ErrNotFound
		}
		delete(d.plans, id)
		for peID, pe := range d.planEvents {
			if pe.TrackingPlanID != id {
				continue
			}
			delete(d.planEvents, peID)
			for pepID, pep := range d.planEventProps {
				if pep.TrackingPlanEventID == peID {
					delete(d.planEventProps, pepID)
				}
			}
		}
		return nil
	})
}

func (s trackingPlanStore) CreateEvent(ctx context.Context, pe *models.TrackingPlanEvent) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.plans[pe.TrackingPlanID]; !ok {
			return store.ErrNotFound
		}
		if _, ok := d.events[pe.EventID]; !ok {
			return store.ErrNotFound
		}
		d.lastPlanEventID++
		pe.ID = d.lastPlanEventID
		d.planEvents[pe.ID] = models.TrackingPlanEvent{
			ID:                   pe.ID,
			TrackingPlanID:       pe.TrackingPlanID,
			EventID:              pe.EventID,
			AdditionalProperties: pe.AdditionalProperties,
		}
		return nil
	})
}

func (s trackingPlanStore) FindEvent(ctx context.Context, planID, id int64) (*models.TrackingPlanEvent, error) {
	var out models.TrackingPlanEvent
	err := s.h.with(func(d *data) error {
		pe, ok := d.planEvents[id]
		if !ok || pe.TrackingPlanID != planID {
			return store.ErrNotFound
		}
		out = pe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s trackingPlanStore) UpdateEvent(ctx context.Context, pe *models.TrackingPlanEvent) error {
	return s.h.with(func(d *data) error {
		row, ok := d.planEvents[pe.ID]
		if !ok {
			return store.ErrNotFound
		}
		row.AdditionalProperties = pe.AdditionalProperties
		d.planEvents[pe.ID] = row
		return nil
	})
}

func (s trackingPlanStore) CreateEventProperty(ctx context.Context, pep *models.TrackingPlanEventProperty) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.planEvents[pep.TrackingPlanEventID]; !ok {
			return store.ErrNotFound
		}
		if _, ok := d.properties[pep.PropertyID]; !ok {
			return store.ErrNotFound
		}
		d.lastPlanEventPropID++
		pep.ID = d.lastPlanEventPropID
		d.planEventProps[pep.ID] = models.TrackingPlanEventProperty{
			ID:                  pep.ID,
			TrackingPlanEventID: pep.TrackingPlanEventID,
			PropertyID:          pep.PropertyID,
			Required:            pep.Required,
		}
		return nil
	})
}

func (s trackingPlanStore) FindEventProperty(ctx context.Context, planEventID, id int64) (*models.TrackingPlanEventProperty, error) {
	var out models.TrackingPlanEventProperty
	err := s.h.with(func(d *data) error {
		pep, ok := d.planEventProps[id]
		if !ok || pep.TrackingPlanEventID != planEventID {
			return store.ErrNotFound
		}
		out = pep
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s trackingPlanStore) UpdateEventProperty(ctx context.Context, pep *models.TrackingPlanEventProperty) error {
	return s.h.with(func(d *data) error {
		row, ok := d.planEventProps[pep.ID]
		if !ok {
			return store.ErrNotFound
		}
		row.Required = pep.Required
		d.planEventProps[pep.ID] = row
		return nil
	})
}
