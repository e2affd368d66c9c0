package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
	"github.com/SscSPs/recon_workbench/internal/middleware"
)

// actorHandler handles HTTP requests related to actors and the current session actor.
type actorHandler struct {
	actorService portssvc.ActorSvcFacade
}

func newActorHandler(as portssvc.ActorSvcFacade) *actorHandler {
	return &actorHandler{actorService: as}
}

// registerActorRoutes registers routes related to actors.
func registerActorRoutes(rg *gin.RouterGroup, actorService portssvc.ActorSvcFacade) {
	h := newActorHandler(actorService)

	rg.GET("/actors", h.listActors)

	session := rg.Group("/session")
	{
		session.GET("/actor", h.getSessionActor)
		session.PUT("/actor", h.setSessionActor)
	}
}

// listActors godoc
// @Summary List known actors
// @Description Lists every actor together with the current process-wide actor
// @Tags actors
// @Produce  json
// @Success 200 {object} dto.ListActorsResponse
// @Failure 500 {object} map[string]string "Failed to list actors"
// @Router /actors [get]
func (h *actorHandler) listActors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actors, err := h.actorService.ListActors(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list actors")
		return
	}
	current, err := h.actorService.CurrentActor(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get current actor")
		return
	}

	c.JSON(http.StatusOK, dto.ListActorsResponse{Actors: actors, Current: current})
}

// getSessionActor godoc
// @Summary Get the acting user
// @Description Returns the actor this request runs as (X-Actor-ID header, else the current actor)
// @Tags actors
// @Produce  json
// @Param   X-Actor-ID header string false "Act as this actor"
// @Success 200 {object} domain.Actor
// @Failure 401 {object} map[string]string "Unknown actor"
// @Router /session/actor [get]
func (h *actorHandler) getSessionActor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, actor)
}

// setSessionActor godoc
// @Summary Switch the current actor
// @Description Makes the first actor holding the given role current
// @Tags actors
// @Accept  json
// @Produce  json
// @Param   request body dto.SetActorRequest true "Role to switch to"
// @Success 200 {object} domain.Actor
// @Failure 400 {object} map[string]string "Invalid role"
// @Failure 404 {object} map[string]string "No actor holds the role"
// @Router /session/actor [put]
func (h *actorHandler) setSessionActor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetActor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, err := h.actorService.SetCurrentActor(c.Request.Context(), req.Role)
	if err != nil {
		respondError(c, logger, err, "Failed to switch actor")
		return
	}

	c.JSON(http.StatusOK, actor)
}
