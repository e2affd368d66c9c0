package repositories

import (
	"context"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// ActorReader defines lookups over the known actors.
type ActorReader interface {
	ListActors(ctx context.Context) ([]domain.Actor, error)
	FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error)

	// FindActorByRole returns the first registered actor holding role.
	FindActorByRole(ctx context.Context, role domain.Role) (*domain.Actor, error)

	// CurrentActor returns the process-wide current actor.
	CurrentActor(ctx context.Context) (*domain.Actor, error)
}

// ActorWriter defines mutations of the actor directory.
type ActorWriter interface {
	SetCurrentActorID(ctx context.Context, actorID string) error
}

// ActorRepositoryFacade combines actor read and write operations.
type ActorRepositoryFacade interface {
	ActorReader
	ActorWriter
}
