package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
)

// actorService manages the actor directory and the current-actor session.
type actorService struct {
	BaseService
	actorRepo portsrepo.ActorRepositoryFacade
}

// NewActorService creates a new actor service.
func NewActorService(repo portsrepo.ActorRepositoryFacade, opts ...Option) portssvc.ActorSvcFacade {
	return &actorService{
		BaseService: newBaseService(opts...),
		actorRepo:   repo,
	}
}

var _ portssvc.ActorSvcFacade = (*actorService)(nil)

func (s *actorService) ListActors(ctx context.Context) ([]domain.Actor, error) {
	actors, err := s.actorRepo.ListActors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list actors")
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	return actors, nil
}

func (s *actorService) GetActor(ctx context.Context, actorID string) (*domain.Actor, error) {
	actor, err := s.actorRepo.FindActorByID(ctx, actorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find actor", slog.String("actor_id", actorID))
		}
		return nil, err
	}
	return actor, nil
}

func (s *actorService) CurrentActor(ctx context.Context) (*domain.Actor, error) {
	return s.actorRepo.CurrentActor(ctx)
}

func (s *actorService) SetCurrentActor(ctx context.Context, role domain.Role) (*domain.Actor, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	actor, err := s.actorRepo.FindActorByRole(ctx, role)
	if err != nil {
		s.LogWarn(ctx, "No actor holds requested role", slog.String("role", string(role)))
		return nil, err
	}

	if err := s.actorRepo.SetCurrentActorID(ctx, actor.ID); err != nil {
		s.LogError(ctx, err, "Failed to switch current actor", slog.String("actor_id", actor.ID))
		return nil, fmt.Errorf("failed to switch current actor: %w", err)
	}

	s.LogInfo(ctx, "Current actor switched",
		slog.String("actor_id", actor.ID),
		slog.String("role", string(actor.Role)))
	return actor, nil
}
