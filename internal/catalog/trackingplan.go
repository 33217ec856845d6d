package catalog

import (
	"context"
	"errors"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

// TrackingPlanService reconciles desired tracking-plan graphs against the
// catalog. Events and properties are resolved by their (name, type) identity:
// an existing row is linked, a missing one is created. An explicit id in an
// update payload means "edit this join row in place" instead.
type TrackingPlanService struct {
	store store.Interface
}

func NewTrackingPlanService(st store.Interface) *TrackingPlanService {
	return &TrackingPlanService{store: st}
}

// Create persists the whole plan graph in one transaction and returns it
// with all store-assigned ids populated. Nothing persists on failure.
func (s *TrackingPlanService) Create(ctx context.Context, req models.CreateTrackingPlanRequest) (*models.TrackingPlan, error) {
	var out *models.TrackingPlan
	err := s.store.Tx(ctx, func(tx store.Interface) error {
		plan := &models.TrackingPlan{Name: req.Name, Description: req.Description}
		if err := tx.TrackingPlans().Create(ctx, plan); err != nil {
			return err
		}
		for _, in := range req.Events {
			if err := createPlanEvent(ctx, tx, plan.ID, in); err != nil {
				return err
			}
		}
		got, err := tx.TrackingPlans().FindByID(ctx, plan.ID)
		if err != nil {
			return err
		}
		out = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TrackingPlanService) List(ctx context.Context) ([]models.TrackingPlan, error) {
	return s.store.TrackingPlans().FetchAll(ctx)
}

func (s *TrackingPlanService) Get(ctx context.Context, id int64) (*models.TrackingPlan, error) {
	return s.store.TrackingPlans().FindByID(ctx, id)
}

// Update applies a partial update to the plan row and reconciles each event
// entry of the payload: a matched id edits the join row and its linked event
// in place, anything else goes through the create path. Entries omitted from
// the payload are left alone, never pruned.
func (s *TrackingPlanService) Update(ctx context.Context, id int64, req models.UpdateTrackingPlanRequest) (*models.TrackingPlan, error) {
	var out *models.TrackingPlan
	err := s.store.Tx(ctx, func(tx store.Interface) error {
		plan, err := tx.TrackingPlans().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if req.Name != nil {
			plan.Name = *req.Name
		}
		if req.Description != nil {
			plan.Description = *req.Description
		}
		if err := tx.TrackingPlans().Update(ctx, plan); err != nil {
			return err
		}

		for _, in := range req.Events {
			if err := reconcilePlanEvent(ctx, tx, plan.ID, in); err != nil {
				return err
			}
		}

		got, err := tx.TrackingPlans().FindByID(ctx, id)
		if err != nil {
			return err
		}
		out = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TrackingPlanService) Delete(ctx context.Context, id int64) error {
	return s.store.TrackingPlans().Delete(ctx, id)
}

// createPlanEvent links one event spec under a plan. The event and all of its
// properties are resolved by identity; pre-existing rows keep their stored
// description.
func createPlanEvent(ctx context.Context, tx store.Interface, planID int64, in models.TrackingPlanEventInput) error {
	event, err := tx.Events().FindOrCreate(ctx, &models.Event{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
	})
	if err != nil {
		return err
	}

	pe := &models.TrackingPlanEvent{
		TrackingPlanID:       planID,
		EventID:              event.ID,
		AdditionalProperties: in.AdditionalProperties != nil && *in.AdditionalProperties,
	}
	if err := tx.TrackingPlans().CreateEvent(ctx, pe); err != nil {
		return err
	}

	for _, p := range in.Properties {
		if err := createPlanEventProperty(ctx, tx, pe.ID, p); err != nil {
			return err
		}
	}
	return nil
}

func createPlanEventProperty(ctx context.Context, tx store.Interface, planEventID int64, in models.TrackingPlanPropertyInput) error {
	prop, err := tx.Properties().FindOrCreate(ctx, &models.Property{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
	})
	if err != nil {
		return err
	}
	return tx.TrackingPlans().CreateEventProperty(ctx, &models.TrackingPlanEventProperty{
		TrackingPlanEventID: planEventID,
		PropertyID:          prop.ID,
		Required:            in.Required != nil && *in.Required,
	})
}

// reconcilePlanEvent applies one event entry of an update payload.
func reconcilePlanEvent(ctx context.Context, tx store.Interface, planID int64, in models.TrackingPlanEventInput) error {
	if in.ID == nil {
		return createPlanEvent(ctx, tx, planID, in)
	}

	pe, err := tx.TrackingPlans().FindEvent(ctx, planID, *in.ID)
	if errors.Is(err, store.ErrNotFound) {
		// Unmatched id: treat the entry as new.
		return createPlanEvent(ctx, tx, planID, in)
	}
	if err != nil {
		return err
	}

	if in.AdditionalProperties != nil {
		pe.AdditionalProperties = *in.AdditionalProperties
	}
	if err := tx.TrackingPlans().UpdateEvent(ctx, pe); err != nil {
		return err
	}

	// An explicit id means "edit this exact event", so the linked row is
	// overwritten rather than resolved by identity.
	event, err := tx.Events().FindByID(ctx, pe.EventID)
	if err != nil {
		return err
	}
	event.Name = in.Name
	event.Type = in.Type
	event.Description = in.Description
	if err := tx.Events().Update(ctx, event); err != nil {
		return err
	}

	for _, p := range in.Properties {
		if err := reconcilePlanEventProperty(ctx, tx, pe.ID, p); err != nil {
			return err
		}
	}
	return nil
}

// reconcilePlanEventProperty applies one property entry of an update payload
// under an existing plan event.
func reconcilePlanEventProperty(ctx context.Context, tx store.Interface, planEventID int64, in models.TrackingPlanPropertyInput) error {
	if in.ID == nil {
		return createPlanEventProperty(ctx, tx, planEventID, in)
	}

	pep, err := tx.TrackingPlans().FindEventProperty(ctx, planEventID, *in.ID)
	if errors.Is(err, store.ErrNotFound) {
		return createPlanEventProperty(ctx, tx, planEventID, in)
	}
	if err != nil {
		return err
	}

	if in.Required != nil {
		pep.Required = *in.Required
	}
	if err := tx.TrackingPlans().UpdateEventProperty(ctx, pep); err != nil {
		return err
	}

	prop, err := tx.Properties().FindByID(ctx, pep.PropertyID)
	if err != nil {
		return err
	}
	prop.Name = in.Name
	prop.Type = in.Type
	prop.Description = in.Description
	return tx.Properties().Update(ctx, prop)
}
