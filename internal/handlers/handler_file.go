package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
	"github.com/SscSPs/recon_workbench/internal/middleware"
	"github.com/SscSPs/recon_workbench/internal/platform/config"
)

// fileHandler handles HTTP requests related to batch file uploads.
type fileHandler struct {
	fileService     portssvc.FileUploadSvcFacade
	queryService    portssvc.FileUploadQuerySvc
	defaultPageSize int
	maxUploadBytes  int64
}

func newFileHandler(cfg *config.Config, fs portssvc.FileUploadSvcFacade, qs portssvc.FileUploadQuerySvc) *fileHandler {
	return &fileHandler{
		fileService:     fs,
		queryService:    qs,
		defaultPageSize: cfg.DefaultPageSize,
		maxUploadBytes:  cfg.MaxUploadBytes,
	}
}

// registerFileRoutes registers routes related to file uploads.
func registerFileRoutes(rg *gin.RouterGroup, cfg *config.Config, fileService portssvc.FileUploadSvcFacade, queryService portssvc.FileUploadQuerySvc) {
	h := newFileHandler(cfg, fileService, queryService)

	files := rg.Group("/files")
	{
		files.GET("", h.searchFiles)
		files.POST("", h.uploadFile)
		files.GET("/:id", h.getFile)
		files.POST("/:id/approve", h.approveFile)
		files.POST("/:id/reject", h.rejectFile)
		files.GET("/:id/export", h.exportFile)
	}
}

// searchFiles godoc
// @Summary Search file uploads
// @Description Filters uploads, orders them newest first and returns one page
// @Tags files
// @Produce  json
// @Param   page query int false "1-based page (default 1)"
// @Param   pageSize query int false "Page size (default from config)"
// @Param   organization query string false "Organization substring, or all"
// @Param   schedule query string false "Schedule substring, or all"
// @Param   status query string false "Exact status, or all"
// @Param   search query string false "Matches file name, uploader, remarks, organization or schedule"
// @Success 200 {object} domain.FileUploadPage
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Failure 500 {object} map[string]string "Failed to search file uploads"
// @Router /files [get]
func (h *fileHandler) searchFiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchFileUploadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for SearchFiles", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if c.Query("page") == "" {
		params.Page = 1
	}
	if c.Query("pageSize") == "" {
		params.PageSize = h.defaultPageSize
	}

	page, err := h.queryService.SearchFileUploads(c.Request.Context(), params.ToFilters(), params.ToPagination())
	if err != nil {
		respondError(c, logger, err, "Failed to search file uploads")
		return
	}

	c.JSON(http.StatusOK, page)
}

// uploadFile godoc
// @Summary Upload a transaction file
// @Description Ingests the file into a batch of transactions held pending approval
// @Tags files
// @Accept  multipart/form-data
// @Produce  json
// @Param   X-Actor-ID header string false "Act as this actor"
// @Param   file formData file true "Statement or export file"
// @Param   source formData string true "Ledger" Enums(bank, system)
// @Param   organization formData string true "Organization"
// @Param   schedule formData string true "Schedule"
// @Param   remarks formData string false "Remarks"
// @Success 201 {object} domain.FileUpload
// @Failure 400 {object} map[string]string "Missing file or invalid form"
// @Failure 403 {object} map[string]string "Actor may not upload files"
// @Failure 413 {object} map[string]string "File too large"
// @Router /files [post]
func (h *fileHandler) uploadFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Upload exceeds size limit", slog.Int64("limit", h.maxUploadBytes))
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("File exceeds %d bytes", h.maxUploadBytes)})
			return
		}
		logger.Warn("Missing file part for UploadFile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	f, err := header.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer f.Close()

	req := dto.UploadFileRequest{
		FileName:     header.Filename,
		Source:       domain.Source(strings.ToLower(c.PostForm("source"))),
		Organization: c.PostForm("organization"),
		Schedule:     c.PostForm("schedule"),
		Remarks:      c.PostForm("remarks"),
	}
	raw := dto.RawFile{Name: header.Filename, Size: header.Size, Content: f}

	logger.Info("Received file upload",
		slog.String("file_name", header.Filename),
		slog.Int64("size", header.Size),
		slog.String("source", string(req.Source)))

	file, err := h.fileService.IngestFile(c.Request.Context(), actor, req, raw)
	if err != nil {
		respondError(c, logger, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, file)
}

// getFile godoc
// @Summary Get a file upload by ID
// @Tags files
// @Produce  json
// @Param   id path string true "File ID"
// @Success 200 {object} domain.FileUpload
// @Failure 404 {object} map[string]string "File not found"
// @Router /files/{id} [get]
func (h *fileHandler) getFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	file, err := h.fileService.GetFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve file upload")
		return
	}

	c.JSON(http.StatusOK, file)
}

// approveFile godoc
// @Summary Approve a file upload
// @Description Approves a pending upload and appends its transactions to the matching ledger
// @Tags files
// @Produce  json
// @Param   X-Actor-ID header string false "Act as this actor"
// @Param   id path string true "File ID"
// @Success 200 {object} domain.FileUpload
// @Failure 403 {object} map[string]string "Actor may not approve"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 409 {object} map[string]string "File is not pending approval"
// @Router /files/{id}/approve [post]
func (h *fileHandler) approveFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	file, err := h.fileService.ApproveFile(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to approve file upload")
		return
	}

	c.JSON(http.StatusOK, file)
}

// rejectFile godoc
// @Summary Reject a file upload
// @Description Rejects a pending upload; its transactions never reach the ledgers
// @Tags files
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string false "Act as this actor"
// @Param   id path string true "File ID"
// @Param   request body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} domain.FileUpload
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 403 {object} map[string]string "Actor may not reject"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 409 {object} map[string]string "File is not pending approval"
// @Router /files/{id}/reject [post]
func (h *fileHandler) rejectFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RejectFile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	file, err := h.fileService.RejectFile(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, logger, err, "Failed to reject file upload")
		return
	}

	c.JSON(http.StatusOK, file)
}

// exportFile godoc
// @Summary Export a file upload's transactions
// @Description Downloads the upload's transactions as CSV
// @Tags files
// @Produce  text/csv
// @Param   id path string true "File ID"
// @Success 200 {string} string "CSV document"
// @Failure 404 {object} map[string]string "File not found"
// @Router /files/{id}/export [get]
func (h *fileHandler) exportFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fileID := c.Param("id")

	file, err := h.fileService.GetFile(c.Request.Context(), fileID)
	if err != nil {
		respondError(c, logger, err, "Failed to export file upload")
		return
	}

	// Buffered so a failure can still be answered with a JSON error.
	var buf bytes.Buffer
	if err := h.fileService.ExportFile(c.Request.Context(), fileID, &buf); err != nil {
		respondError(c, logger, err, "Failed to export file upload")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(file.FileName)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// exportFileName derives the download name, e.g. "bank_march.xlsx" becomes "bank_march_transactions.csv".
func exportFileName(uploaded string) string {
	base := filepath.Base(uploaded)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == "/" {
		name = "export"
	}
	return name + "_transactions.csv"
}
