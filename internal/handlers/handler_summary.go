package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/middleware"
)

type summaryHandler struct {
	reportingService portssvc.ReportingService
}

// registerSummaryRoutes registers the dashboard summary route.
func registerSummaryRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &summaryHandler{reportingService: reportingService}
	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Counts transactions, reconciliation entries and file uploads by status
// @Tags summary
// @Produce  json
// @Success 200 {object} domain.Summary
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
