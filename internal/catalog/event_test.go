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

func TestEventCreateAssignsID(t *testing.T) {
	svc := NewEventService(memory.New())

	e, err := svc.Create(context.Background(), models.CreateEventRequest{
		Name: "Signed Up", Type: "track", Description: "d",
	})
	require.NoError(t, err)
	assert.NotZero(t, e.ID)
	assert.Equal(t, "Signed Up", e.Name)
}

func TestEventCreateDuplicateIdentityFails(t *testing.T) {
	svc := NewEventService(memory.New())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateEventRequest{Name: "Signed Up", Type: "track", Description: "d"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.CreateEventRequest{Name: "Signed Up", Type: "track", Description: "other"})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestEventGetMissingIsNotFound(t *testing.T) {
	svc := NewEventService(memory.New())

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEventUpdateIsPartial(t *testing.T) {
	svc := NewEventService(memory.New())
	ctx := context.Background()

	e, err := svc.Create(ctx, models.CreateEventRequest{Name: "Signed Up", Type: "track", Description: "keep"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, e.ID, models.UpdateEventRequest{Name: strp("Signed In")})
	require.NoError(t, err)
	assert.Equal(t, "Signed In", updated.Name)
	assert.Equal(t, "track", updated.Type)
	assert.Equal(t, "keep", updated.Description)
}

func TestEventDelete(t *testing.T) {
	svc := NewEventService(memory.New())
	ctx := context.Background()

	e, err := svc.Create(ctx, models.CreateEventRequest{Name: "Signed Up", Type: "track", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, e.ID))
	_, err = svc.Get(ctx, e.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, e.ID), store.ErrNotFound)
}

func TestPropertyCRUD(t *testing.T) {
	svc := NewPropertyService(memory.New())
	ctx := context.Background()

	p, err := svc.Create(ctx, models.CreatePropertyRequest{Name: "productId", Type: "string", Description: "d"})
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	updated, err := svc.Update(ctx, p.ID, models.UpdatePropertyRequest{Description: strp("changed")})
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Description)
	assert.Equal(t, "productId", updated.Name)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
