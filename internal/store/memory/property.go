package memory

import (
	"context"
	"sort"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

type propertyStore struct{ h dataHolder }

func (d *data) propertyByIdentity(name, typ string) (models.Property, bool) {
	for _, p := range d.properties {
		if p.Name == name && p.Type == typ {
			return p, true
		}
	}
	return models.Property{}, false
}

func (s propertyStore) Create(ctx context.Context, p *models.Property) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.propertyByIdentity(p.Name, p.Type); ok {
			return store.ErrConflict
		}
		d.lastPropertyID++
		p.ID = d.lastPropertyID
		d.properties[p.ID] = *p
		return nil
	})
}

func (s propertyStore) FetchAll(ctx context.Context) ([]models.Property, error) {
	out := []models.Property{}
	err := s.h.with(func(d *data) error {
		for _, p := range d.properties {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s propertyStore) FindByID(ctx context.Context, id int64) (*models.Property, error) {
	var out models.Property
	err := s.h.with(func(d *data) error {
		p, ok := d.properties[id]
		if !ok {
			return store.ErrNotFound
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s propertyStore) FindOrCreate(ctx context.Context, p *models.Property) (*models.Property, error) {
	var out models.Property
	err := s.h.with(func(d *data) error {
		if existing, ok := d.propertyByIdentity(p.Name, p.Type); ok {
			out = existing
			return nil
		}
		d.lastPropertyID++
		out = models.Property{ID: d.lastPropertyID, Name: p.Name, Type: p.Type, Description: p.Description}
		d.properties[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s propertyStore) Update(ctx context.Context, p *models.Property) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.properties[p.ID]; !ok {
			return store.ErrNotFound
		}
		if other, ok := d.propertyByIdentity(p.Name, p.Type); ok && other.ID != p.ID {
			return store.ErrConflict
		}
		d.properties[p.ID] = *p
		return nil
	})
}

func (s propertyStore) Delete(ctx context.Context, id int64) error {
	return s.h.with(func(d *data) error {
		if _, ok := d.properties[id]; !ok {
			return store.ErrNotFound
		}
		for _, pep := range d.planEventProps {
			if pep.PropertyID == id {
				return store.ErrConflict
			}
		}
		delete(d.properties, id)
		return nil
	})
}
