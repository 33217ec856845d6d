package catalog

import (
	"context"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

// PropertyService provides direct CRUD over the property catalog.
type PropertyService struct {
	store store.Interface
}

func NewPropertyService(st store.Interface) *PropertyService {
	return &PropertyService{store: st}
}

func (s *PropertyService) Create(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error) {
	p := &models.Property{Name: req.Name, Type: req.Type, Description: req.Description}
	if err := s.store.Properties().Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	return s.store.Properties().FetchAll(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*models.Property, error) {
	return s.store.Properties().FindByID(ctx, id)
}

// Update is a partial update: absent fields keep their stored value.
func (s *PropertyService) Update(ctx context.Context, id int64, req models.UpdatePropertyRequest) (*models.Property, error) {
	p, err := s.store.Properties().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if err := s.store.Properties().Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	return s.store.Properties().Delete(ctx, id)
}
