package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/http/response"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/services"
	"github.com/minamhq/minam-backend/internal/types"
)

type AnalysisHandler struct {
	log            *logger.Logger
	analysis       services.AnalysisService
	maxUploadBytes int64
}

func NewAnalysisHandler(log *logger.Logger, analysis services.AnalysisService, maxUploadBytes int64) *AnalysisHandler {
	return &AnalysisHandler{
		log:            log.With("handler", "AnalysisHandler"),
		analysis:       analysis,
		maxUploadBytes: maxUploadBytes,
	}
}

type uploadResponse struct {
	FileID   uuid.UUID                `json:"file_id"`
	Filename string                   `json:"filename"`
	FileSize int64                    `json:"file_size"`
	FileType string                   `json:"file_type"`
	Analysis *types.DirectoryAnalysis `json:"analysis,omitempty"`
}

func (h *AnalysisHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "no_file_uploaded", err)
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		response.RespondError(c, http.StatusRequestEntityTooLarge, "file_too_large", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}
	if len(content) == 0 {
		response.RespondError(c, http.StatusBadRequest, "no_file_uploaded", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upload, analysis := h.analysis.Upload(c.Request.Context(), fileHeader.Filename, contentType, content)
	response.RespondOK(c, uploadResponse{
		FileID:   upload.ID,
		Filename: upload.Filename,
		FileSize: upload.Size,
		FileType: upload.ContentType,
		Analysis: analysis,
	})
}

type analyzeRequest struct {
	FileID uuid.UUID `json:"file_id"`
	Model  string    `json:"model"`
}

type analyzeResponse struct {
	Analysis *types.DirectoryAnalysis `json:"analysis"`
	Success  bool                     `json:"success"`
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	analysis, apiErr := h.analysis.Analyze(c.Request.Context(), req.FileID, req.Model)
	if apiErr != nil {
		response.RespondAPIError(c, apiErr)
		return
	}
	response.RespondOK(c, analyzeResponse{Analysis: analysis, Success: true})
}

type generateSpecRequest struct {
	Analysis *types.DirectoryAnalysis `json:"analysis" binding:"required"`
	Model    string                   `json:"model"`
}

type generateSpecResponse struct {
	Specification map[string]any `json:"specification"`
	Success       bool           `json:"success"`
}

func (h *AnalysisHandler) GenerateSpec(c *gin.Context) {
	var req generateSpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	spec, err := h.analysis.GenerateSpec(c.Request.Context(), req.Analysis, req.Model)
	if err != nil {
		h.log.Error("spec generation failed", "error", err)
		response.RespondError(c, http.StatusBadGateway, "spec_generation_failed", err)
		return
	}
	response.RespondOK(c, generateSpecResponse{Specification: spec, Success: true})
}
