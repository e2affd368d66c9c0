package services

import (
	"context"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// ActorReaderSvc defines read operations over known actors.
type ActorReaderSvc interface {
	ListActors(ctx context.Context) ([]domain.Actor, error)
	GetActor(ctx context.Context, actorID string) (*domain.Actor, error)
	CurrentActor(ctx context.Context) (*domain.Actor, error)
}

// ActorSessionSvc switches the process-wide current actor.
type ActorSessionSvc interface {
	// SetCurrentActor makes the first actor holding role current.
	// It returns apperrors.ErrNotFound when no actor holds role.
	SetCurrentActor(ctx context.Context, role domain.Role) (*domain.Actor, error)
}

// ActorSvcFacade combines all actor-related service interfaces.
type ActorSvcFacade interface {
	ActorReaderSvc
	ActorSessionSvc
}
