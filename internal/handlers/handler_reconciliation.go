package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
	"github.com/SscSPs/recon_workbench/internal/middleware"
)

// reconciliationHandler handles HTTP requests related to reconciliation entries.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

// registerReconciliationRoutes registers routes related to reconciliation entries.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	recs := rg.Group("/reconciliations")
	{
		recs.GET("", h.listReconciliations)
		recs.POST("", h.createReconciliation)
		recs.GET("/:id", h.getReconciliation)
		recs.POST("/:id/approve", h.approveReconciliation)
		recs.POST("/:id/reject", h.rejectReconciliation)
	}
}

// bindOptionalJSON binds a JSON body when one is sent. An empty body leaves obj untouched.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// listReconciliations godoc
// @Summary List reconciliation entries
// @Description Lists entries newest first, optionally filtered by status
// @Tags reconciliations
// @Produce  json
// @Param   status query string false "Status" Enums(draft, pending_approval, approved, rejected)
// @Success 200 {object} dto.ListReconciliationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list reconciliations"
// @Router /reconciliations [get]
func (h *reconciliationHandler) listReconciliations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListReconciliationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListReconciliations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.reconciliationService.ListReconciliations(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list reconciliations")
		return
	}

	c.JSON(http.StatusOK, dto.ListReconciliationsResponse{Reconciliations: entries, Count: len(entries)})
}

// createReconciliation godoc
// @Summary Propose a reconciliation
// @Description Pairs an unreconciled bank line with an unreconciled system line; both become pending
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string false "Act as this actor"
// @Param   request body dto.CreateReconciliationRequest true "Transaction pair"
// @Success 201 {object} dto.CreateReconciliationResponse
// @Failure 400 {object} map[string]string "Invalid input or wrong ledger"
// @Failure 403 {object} map[string]string "Actor may not create reconciliations"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already pending or reconciled"
// @Router /reconciliations [post]
func (h *reconciliationHandler) createReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	entry, err := h.reconciliationService.CreateReconciliation(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create reconciliation")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateReconciliationResponse{ID: entry.ID, Entry: *entry})
}

// getReconciliation godoc
// @Summary Get a reconciliation entry by ID
// @Tags reconciliations
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} domain.ReconciliationEntry
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /reconciliations/{id} [get]
func (h *reconciliationHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.reconciliationService.GetReconciliation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve reconciliation")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// approveReconciliation godoc
// @Summary Approve a reconciliation
// @Description Approves a pending entry; both transactions become reconciled
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string false "Act as this actor"
// @Param   id path string true "Entry ID"
// @Param   request body dto.ApproveRequest false "Optional comments"
// @Success 200 {object} domain.ReconciliationEntry
// @Failure 403 {object} map[string]string "Actor may not approve"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending approval"
// @Router /reconciliations/{id}/approve [post]
func (h *reconciliationHandler) approveReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApproveRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		logger.Warn("Failed to bind JSON for ApproveReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	entry, err := h.reconciliationService.ApproveReconciliation(c.Request.Context(), actor, c.Param("id"), req.Comments)
	if err != nil {
		respondError(c, logger, err, "Failed to approve reconciliation")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// rejectReconciliation godoc
// @Summary Reject a reconciliation
// @Description Rejects a pending entry with a reason; both transactions revert to unreconciled
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string false "Act as this actor"
// @Param   id path string true "Entry ID"
// @Param   request body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} domain.ReconciliationEntry
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 403 {object} map[string]string "Actor may not reject"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending approval"
// @Router /reconciliations/{id}/reject [post]
func (h *reconciliationHandler) rejectReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RejectReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	entry, err := h.reconciliationService.RejectReconciliation(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, logger, err, "Failed to reject reconciliation")
		return
	}

	c.JSON(http.StatusOK, entry)
}
