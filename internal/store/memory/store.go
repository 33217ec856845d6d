// Package memory provides an in-memory implementation of store.Interface.
// It backs the unit tests and is handy for poking at the API locally without
// a Postgres instance.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

// Store keeps all catalog rows in maps guarded by one mutex.
type Store struct {
	mu sync.Mutex
	d  *data
}

type data struct {
	lastEventID         int64
	lastPropertyID      int64
	lastPlanID          int64
	lastPlanEventID     int64
	lastPlanEventPropID int64

	events     map[int64]models.Event
	properties map[int64]models.Property
	// Plan and join rows are stored stripped: no nested graph, only ids and
	// scalar columns, mirroring what the relational backend persists.
	plans          map[int64]models.TrackingPlan
	planEvents     map[int64]models.TrackingPlanEvent
	planEventProps map[int64]models.TrackingPlanEventProperty
}

// New returns an empty store.
func New() *Store {
	return &Store{d: &data{
		events:         map[int64]models.Event{},
		properties:     map[int64]models.Property{},
		plans:          map[int64]models.TrackingPlan{},
		planEvents:     map[int64]models.TrackingPlanEvent{},
		planEventProps: map[int64]models.TrackingPlanEventProperty{},
	}}
}

func (d *data) clone() *data {
	c := *d
	c.events = maps.Clone(d.events)
	c.properties = maps.Clone(d.properties)
	c.plans = maps.Clone(d.plans)
	c.planEvents = maps.Clone(d.planEvents)
	c.planEventProps = maps.Clone(d.planEventProps)
	return &c
}

// dataHolder serializes access to the store's data. The root Store locks its
// mutex per call; the transactional view runs lock-free because Tx already
// holds the lock for the whole callback.
type dataHolder interface {
	with(fn func(*data) error) error
}

func (s *Store) with(fn func(*data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.d)
}

func (s *Store) Events() store.EventStore               { return eventStore{s} }
func (s *Store) Properties() store.PropertyStore        { return propertyStore{s} }
func (s *Store) TrackingPlans() store.TrackingPlanStore { return trackingPlanStore{s} }

// Tx snapshots the data before running fn and restores the snapshot when fn
// fails, so a failed callback leaves no partial writes behind.
func (s *Store) Tx(ctx context.Context, fn func(store.Interface) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.d.clone()
	if err := fn(&txStore{d: s.d}); err != nil {
		s.d = snapshot
		return err
	}
	return nil
}

// Ping always succeeds; there is no external dependency to check.
func (s *Store) Ping(ctx context.Context) error { return nil }

// txStore is the transactional view handed to Tx callbacks.
type txStore struct{ d *data }

func (t *txStore) with(fn func(*data) error) error { return fn(t.d) }

func (t *txStore) Events() store.EventStore               { return eventStore{t} }
func (t *txStore) Properties() store.PropertyStore        { return propertyStore{t} }
func (t *txStore) TrackingPlans() store.TrackingPlanStore { return trackingPlanStore{t} }

// Tx inside a transaction reuses the enclosing one.
func (t *txStore) Tx(ctx context.Context, fn func(store.Interface) error) error {
	return fn(t)
}

func (t *txStore) Ping(ctx context.Context) error { return nil }
