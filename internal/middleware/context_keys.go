package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// actorKey is the key used to store the acting user in the request context.
const actorKey = contextKey("actor")

// ActorHeader lets a caller act as a specific known actor instead of the current one.
const ActorHeader = "X-Actor-ID"

// ActorResolver looks up the actor a request runs as.
type ActorResolver interface {
	GetActor(ctx context.Context, actorID string) (*domain.Actor, error)
	CurrentActor(ctx context.Context) (*domain.Actor, error)
}

// ActorMiddleware resolves the acting user for every request: the actor named by
// the X-Actor-ID header when present, otherwise the current actor.
func ActorMiddleware(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := GetLoggerFromCtx(ctx)

		var (
			actor *domain.Actor
			err   error
		)
		if actorID := c.GetHeader(ActorHeader); actorID != "" {
			actor, err = resolver.GetActor(ctx, actorID)
		} else {
			actor, err = resolver.CurrentActor(ctx)
		}
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Actor could not be resolved", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown actor"})
				return
			}
			logger.Error("Failed to resolve actor", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve actor"})
			return
		}

		enriched := logger.With(slog.String("actor_id", actor.ID), slog.String("actor_role", string(actor.Role)))
		ctx = WithLogger(WithActor(ctx, *actor), enriched)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActorFromContext retrieves the acting user stored by ActorMiddleware.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := c.Request.Context().Value(actorKey).(domain.Actor)
	return actor, ok
}
