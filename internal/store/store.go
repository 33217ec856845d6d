package store

import (
	"context"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
)

// Interface is implemented by the storage backends.
type Interface interface {
	Events() EventStore
	Properties() PropertyStore
	TrackingPlans() TrackingPlanStore

	// Tx runs fn against a transactional view of the store. Writes made by
	// fn are applied atomically: if fn returns an error, nothing persists.
	// Calling Tx from inside a transaction reuses the enclosing one.
	Tx(ctx context.Context, fn func(Interface) error) error

	// Ping is used by the readiness endpoint to validate connectivity.
	Ping(ctx context.Context) error
}

// EventStore manages Event rows.
type EventStore interface {
	Create(ctx context.Context, e *models.Event) error
	FetchAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id int64) (*models.Event, error)
	// FindOrCreate resolves an event by its (name, type) identity, creating
	// it when absent. An existing row is returned untouched; in particular
	// its description is never overwritten.
	FindOrCreate(ctx context.Context, e *models.Event) (*models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// PropertyStore manages Property rows with the same identity convention as
// EventStore.
type PropertyStore interface {
	Create(ctx context.Context, p *models.Property) error
	FetchAll(ctx context.Context) ([]models.Property, error)
	FindByID(ctx context.Context, id int64) (*models.Property, error)
	FindOrCreate(ctx context.Context, p *models.Property) (*models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id int64) error
}

// TrackingPlanStore manages TrackingPlan rows and their join rows. FetchAll
// and FindByID return the full nested graph (events → event, properties →
// property); the join-row operations work on bare rows without the graph.
type TrackingPlanStore interface {
	Create(ctx context.Context, p *models.TrackingPlan) error
	FetchAll(ctx context.Context) ([]models.TrackingPlan, error)
	FindByID(ctx context.Context, id int64) (*models.TrackingPlan, error)
	Update(ctx context.Context, p *models.TrackingPlan) error
	// Delete removes the plan and its join rows. The referenced Event and
	// Property rows stay; they may be shared with other plans.
	Delete(ctx context.Context, id int64) error

	CreateEvent(ctx context.Context, pe *models.TrackingPlanEvent) error
	FindEvent(ctx context.Context, planID, id int64) (*models.TrackingPlanEvent, error)
	UpdateEvent(ctx context.Context, pe *models.TrackingPlanEvent) error

	CreateEventProperty(ctx context.Context, pep *models.TrackingPlanEventProperty) error
	FindEventProperty(ctx context.Context, planEventID, id int64) (*models.TrackingPlanEventProperty, error)
	UpdateEventProperty(ctx context.Context, pep *models.TrackingPlanEventProperty) error
}
