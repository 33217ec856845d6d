package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

func TestTxRollsBackOnError(t *testing.T) {
	st := New()
	ctx := context.Background()

	boom := errors.New("boom")
	err := st.Tx(ctx, func(tx store.Interface) error {
		if err := tx.Events().Create(ctx, &models.Event{Name: "a", Type: "track"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	events, err := st.Events().FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestTxCommitsOnSuccess(t *testing.T) {
	st := New()
	ctx := context.Background()

	err := st.Tx(ctx, func(tx store.Interface) error {
		return tx.Events().Create(ctx, &models.Event{Name: "a", Type: "track"})
	})
	require.NoError(t, err)

	events, err := st.Events().FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestFindOrCreateIsIdempotentPerIdentity(t *testing.T) {
	st := New()
	ctx := context.Background()

	first, err := st.Events().FindOrCreate(ctx, &models.Event{Name: "a", Type: "track", Description: "one"})
	require.NoError(t, err)

	second, err := st.Events().FindOrCreate(ctx, &models.Event{Name: "a", Type: "track", Description: "two"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "one", second.Description)

	// A different type is a different identity.
	third, err := st.Events().FindOrCreate(ctx, &models.Event{Name: "a", Type: "identify"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestEventUpdateRejectsIdentityCollision(t *testing.T) {
	st := New()
	ctx := context.Background()

	a := &models.Event{Name: "a", Type: "track"}
	require.NoError(t, st.Events().Create(ctx, a))
	b := &models.Event{Name: "b", Type: "track"}
	require.NoError(t, st.Events().Create(ctx, b))

	b.Name = "a"
	assert.ErrorIs(t, st.Events().Update(ctx, b), store.ErrConflict)
}

func TestEventDeleteRefusedWhileReferenced(t *testing.T) {
	st := New()
	ctx := context.Background()

	e := &models.Event{Name: "a", Type: "track"}
	require.NoError(t, st.Events().Create(ctx, e))
	plan := &models.TrackingPlan{Name: "p"}
	require.NoError(t, st.TrackingPlans().Create(ctx, plan))
	require.NoError(t, st.TrackingPlans().CreateEvent(ctx, &models.TrackingPlanEvent{
		TrackingPlanID: plan.ID, EventID: e.ID,
	}))

	assert.ErrorIs(t, st.Events().Delete(ctx, e.ID), store.ErrConflict)
}

func TestPlanDeleteCascadesJoinRowsOnly(t *testing.T) {
	st := New()
	ctx := context.Background()

	e := &models.Event{Name: "a", Type: "track"}
	require.NoError(t, st.Events().Create(ctx, e))
	p := &models.Property{Name: "x", Type: "string"}
	require.NoError(t, st.Properties().Create(ctx, p))

	plan := &models.TrackingPlan{Name: "p"}
	require.NoError(t, st.TrackingPlans().Create(ctx, plan))
	pe := &models.TrackingPlanEvent{TrackingPlanID: plan.ID, EventID: e.ID}
	require.NoError(t, st.TrackingPlans().CreateEvent(ctx, pe))
	pep := &models.TrackingPlanEventProperty{TrackingPlanEventID: pe.ID, PropertyID: p.ID}
	require.NoError(t, st.TrackingPlans().CreateEventProperty(ctx, pep))

	require.NoError(t, st.TrackingPlans().Delete(ctx, plan.ID))

	_, err := st.TrackingPlans().FindEvent(ctx, plan.ID, pe.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.TrackingPlans().FindEventProperty(ctx, pe.ID, pep.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Shared rows survive and become deletable again.
	assert.NoError(t, st.Events().Delete(ctx, e.ID))
	assert.NoError(t, st.Properties().Delete(ctx, p.ID))
}

func TestPlanGraphOrdering(t *testing.T) {
	st := New()
	ctx := context.Background()

	plan := &models.TrackingPlan{Name: "p"}
	require.NoError(t, st.TrackingPlans().Create(ctx, plan))

	for _, name := range []string{"a", "b", "c"} {
		e := &models.Event{Name: name, Type: "track"}
		require.NoError(t, st.Events().Create(ctx, e))
		require.NoError(t, st.TrackingPlans().CreateEvent(ctx, &models.TrackingPlanEvent{
			TrackingPlanID: plan.ID, EventID: e.ID,
		}))
	}

	got, err := st.TrackingPlans().FindByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, got.Events, 3)
	assert.Equal(t, "a", got.Events[0].Event.Name)
	assert.Equal(t, "b", got.Events[1].Event.Name)
	assert.Equal(t, "c", got.Events[2].Event.Name)
}

func TestFindEventScopedToPlan(t *testing.T) {
	st := New()
	ctx := context.Background()

	e := &models.Event{Name: "a", Type: "track"}
	require.NoError(t, st.Events().Create(ctx, e))

	planA := &models.TrackingPlan{Name: "a"}
	require.NoError(t, st.TrackingPlans().Create(ctx, planA))
	planB := &models.TrackingPlan{Name: "b"}
	require.NoError(t, st.TrackingPlans().Create(ctx, planB))

	pe := &models.TrackingPlanEvent{TrackingPlanID: planA.ID, EventID: e.ID}
	require.NoError(t, st.TrackingPlans().CreateEvent(ctx, pe))

	_, err := st.TrackingPlans().FindEvent(ctx, planA.ID, pe.ID)
	assert.NoError(t, err)
	_, err = st.TrackingPlans().FindEvent(ctx, planB.ID, pe.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
