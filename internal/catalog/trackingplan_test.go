package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
	"github.com/PratikDhanave/data-catalog-service/internal/store/memory"
)

func boolp(b bool) *bool    { return &b }
func strp(s string) *string { return &s }
func idp(i int64) *int64    { return &i }

func clickedEventInput() models.TrackingPlanEventInput {
	return models.TrackingPlanEventInput{
		Name:                 "Product Clicked",
		Type:                 "track",
		Description:          "User clicked on a product",
		AdditionalProperties: boolp(true),
		Properties: []models.TrackingPlanPropertyInput{
			{Name: "productId", Type: "string", Description: "ID of the product", Required: boolp(true)},
		},
	}
}

func newPlanService() (*TrackingPlanService, *memory.Store) {
	st := memory.New()
	return NewTrackingPlanService(st), st
}

func TestTrackingPlanCreatePopulatesIDs(t *testing.T) {
	svc, _ := newPlanService()
	ctx := context.Background()

	plan, err := svc.Create(ctx, models.CreateTrackingPlanRequest{
		Name:        "User Tracking Plan",
		Description: "Tracks user interactions",
		Events:      []models.TrackingPlanEventInput{clickedEventInput()},
	})
	require.NoError(t, err)

	require.NotZero(t, plan.ID)
	require.Len(t, plan.Events, 1)

	pe := plan.Events[0]
	assert.NotZero(t, pe.ID)
	assert.Equal(t, plan.ID, pe.TrackingPlanID)
	assert.True(t, pe.AdditionalProperties)
	assert.Equal(t, "Product Clicked", pe.Event.Name)
	assert.Equal(t, pe.EventID, pe.Event.ID)

	require.Len(t, pe.Properties, 1)
	pp := pe.Properties[0]
	assert.NotZero(t, pp.ID)
	assert.NotZero(t, pp.Property.ID)
	assert.Equal(t, "productId", pp.Property.Name)
	assert.True(t, pp.Required)
}

func TestTrackingPlanCreateSharedIdentityResolvesOnce(t *testing.T) {
	svc, st := newPlanService()
	ctx := context.Background()

	first := clickedEventInput()
	second := clickedEventInput()
	second.AdditionalProperties = boolp(false)

	plan, err := svc.Create(ctx, models.CreateTrackingPlanRequest{
		Name:        "Plan",
		Description: "d",
		Events:      []models.TrackingPlanEventInput{first, second},
	})
	require.NoError(t, err)
	require.Len(t, plan.Events, 2)

	// Exactly one event row exists; both join rows link to it.
	events, err := st.Events().FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, events[0].ID, plan.Events[0].EventID)
	assert.Equal(t, events[0].ID, plan.Events[1].EventID)

	// Same for the shared property.
	props, err := st.Properties().FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, props, 1)
}

func TestTrackingPlanCreateKeepsExistingDescription(t *testing.T) {
	svc, st := newPlanService()
	ctx := context.Background()

	existing := &models.Event{Name: "Product Clicked", Type: "track", Description: "original"}
	require.NoError(t, st.Events().Create(ctx, existing))

	in := clickedEventInput()
	in.Description = "overwritten?"

	plan, err := svc.Create(ctx, models.CreateTrackingPlanRequest{
		Name:        "Plan",
		Description: "d",
		Events:      []models.TrackingPlanEventInput{in},
	})
	require.NoError(t, err)

	require.Len(t, plan.Events, 1)
	assert.Equal(t, existing.ID, plan.Events[0].EventID)
	assert.Equal(t, "original", plan.Events[0].Event.Description)
}

func TestTrackingPlanRoundTrip(t *testing.T) {
	svc, _ := newPlanService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateTrackingPlanRequest{
		Name:        "Plan A",
		Description: "d",
		Events:      []models.TrackingPlanEventInput{clickedEventInput()},
	})
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestTrackingPlanUpdateScalarFieldsArePartial(t *testing.T) {
	svc, _ := newPlanService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateTrackingPlanRequest{
		Name:        "Plan",
		Description: "keep me",
		Events:      []models.TrackingPlanEventInput{clickedEventInput()},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, models.UpdateTrackingPlanRequest{
		Name: strp("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "keep me", updated.Description)
	// Composition untouched when no events are submitted.
	assert.Equal(t, created.Events, updated.Events)
}

func TestTrackingPlanUpdateMatchedIDEditsInPlace(t *testing.T) {
	svc, st := newPlanService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateTrackingPlanRequest{
		Name:        "Plan",
		Description: "d",
		Events:      []models.TrackingPlanEventInput{clickedEventInput()},
	})
	require.NoError(t, err)
	pe := created.Events[0]
	pp := pe.Properties[0]

	in := models.TrackingPlanEventInput{
		ID:                   idp(pe.ID),
		Name:                 "Product Viewed",
		Type:                 "track",
		Description:          "renamed",
		AdditionalProperties: boolp(false),
		Properties: []models.TrackingPlanPropertyInput{
			{ID: idp(pp.ID), Name: "productId", Type: "string", Description: "updated", Required: boolp(false)},
		},
	}

	updated, err := svc.Update(ctx, created.ID, models.UpdateTrackingPlanRequest{
		Events: []models.TrackingPlanEventInput{in},
	})
	require.NoError(t, err)

	require.Len(t, updated.Events, 1)
	got := updated.Events[0]
	assert.Equal(t, pe.ID, got.ID)
	assert.Equal(t, pe.EventID, got.EventID)
	assert.False(t, got.AdditionalProperties)
	assert.Equal(t, "Product Viewed", got.Event.Name)
	assert.Equal(t, "renamed", got.Event.Description)

	require.Len(t, got.Properties, 1)
	assert.Equal(t, pp.ID, got.Properties[0].ID)
	assert.Equal(t, pp.PropertyID, got.Properties[0].PropertyID)
	assert.False(t, got.Properties[0].Required)
	assert.Equal(t, "updated", got.Properties[0].Property.Description)

	// In-place edits create no duplicate rows.
	events, err := st.Events().FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	props, err := st.Properties().FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 1)
}

func TestTrackingPlanUpdateUnmatchedIDCreatesNewJoinRow(t *testing.T) {
	svc, st := newPlanService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateTrackingPlanRequest{
		Name:        "Plan",
		Description: "d",
		Events:      []models.TrackingPlanEventInput{clickedEventInput()},
	})
	require.NoError(t, err)

	// Same (name, type) identity under a bogus id: the join row is new but
	// the event row is reused.
	in := clickedEventInput()
	in.ID = idp(9999)

	updated, err := svc.Update(ctx, created.ID, models.UpdateTrackingPlanRequest{
		Events: []models.TrackingPlanEventInput{in},
	})
	require.NoError(t, err)

	require.Len(t, updated.Events, 2)
	assert.NotEqual(t, updated.Events[0].ID, updated.Events[1].ID)
	assert.Equal(t, updated.Events[0].EventID, updated.Events[1].EventID)

	events, err := st.Events().FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestTrackingPlanUpdateMissingPlanIsNotFound(t *testing.T) {
	svc, _ := newPlanService()

	_, err := svc.Update(context.Background(), 42, models.UpdateTrackingPlanRequest{Name: strp("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTrackingPlanDeleteKeepsSharedRows(t *testing.T) {
	svc, st := newPlanService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateTrackingPlanRequest{
		Name:        "Plan",
		Description: "d",
		Events:      []models.TrackingPlanEventInput{clickedEventInput()},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The referenced event and property rows survive the plan.
	events, err := st.Events().FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	props, err := st.Properties().FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 1)
}

func TestTrackingPlanDeleteMissingIsNotFound(t *testing.T) {
	svc, _ := newPlanService()
	assert.ErrorIs(t, svc.Delete(context.Background(), 7), store.ErrNotFound)
}
