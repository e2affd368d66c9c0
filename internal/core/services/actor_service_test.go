package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/recon_workbench/internal/adapters/memory"
	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	"github.com/SscSPs/recon_workbench/internal/core/services"
)

func TestActorService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewActorService(newSeededStore(t))

	actors, err := svc.ListActors(ctx)
	require.NoError(t, err)
	assert.Len(t, actors, 3)

	current, err := svc.CurrentActor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Maker", current.Name)

	switched, err := svc.SetCurrentActor(ctx, domain.RoleChecker)
	require.NoError(t, err)
	assert.Equal(t, "user-2", switched.ID)

	current, err = svc.CurrentActor(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleChecker, current.Role)

	_, err = svc.SetCurrentActor(ctx, domain.Role("auditor"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	got, err := svc.GetActor(ctx, "user-3")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	_, err = svc.GetActor(ctx, "user-9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSetCurrentActorUnknownRole(t *testing.T) {
	// Only a maker exists, so switching to checker must fail instead of doing nothing.
	store, err := memory.NewStore(memory.WithSeed(memory.Seed{
		Actors:         []domain.Actor{maker},
		CurrentActorID: maker.ID,
	}))
	require.NoError(t, err)
	svc := services.NewActorService(store)

	_, err = svc.SetCurrentActor(context.Background(), domain.RoleChecker)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	current, err := svc.CurrentActor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, maker.ID, current.ID)
}
