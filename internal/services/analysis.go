package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/platform/apierr"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/store"
	"github.com/minamhq/minam-backend/internal/types"
)

// Analyst is the external large-language-model collaborator. The core never
// depends on it being real; tests use a stub.
type Analyst interface {
	// AnalyzeFile returns prose reasoning about an uploaded file.
	AnalyzeFile(ctx context.Context, upload *types.FileUpload, model string) (string, error)
	// GenerateSpec returns the raw model reply for an API specification,
	// ideally a JSON document.
	GenerateSpec(ctx context.Context, analysis *types.DirectoryAnalysis, model string) (string, error)
}

// AnalysisService handles file uploads and the LLM enrichment side of the
// API-builder flow. It is boundary plumbing around the core: nothing here
// touches the five entity tables.
type AnalysisService interface {
	Upload(ctx context.Context, filename, contentType string, content []byte) (*types.FileUpload, *types.DirectoryAnalysis)
	Analyze(ctx context.Context, fileID uuid.UUID, model string) (*types.DirectoryAnalysis, *apierr.Error)
	GenerateSpec(ctx context.Context, analysis *types.DirectoryAnalysis, model string) (map[string]any, error)
}

type analysisService struct {
	uploads *store.Table[*types.FileUpload]
	analyst Analyst
	model   string
	log     *logger.Logger
}

// NewAnalysisService wires the upload table and the LLM collaborator.
// analyst may be nil, in which case Analyze and GenerateSpec fall back to
// local heuristics only.
func NewAnalysisService(analyst Analyst, defaultModel string, baseLog *logger.Logger) AnalysisService {
	return &analysisService{
		uploads: store.NewTable[*types.FileUpload](),
		analyst: analyst,
		model:   defaultModel,
		log:     baseLog.With("service", "AnalysisService"),
	}
}

func (as *analysisService) Upload(ctx context.Context, filename, contentType string, content []byte) (*types.FileUpload, *types.DirectoryAnalysis) {
	upload := &types.FileUpload{
		ID:          uuid.New(),
		Filename:    filename,
		Size:        int64(len(content)),
		ContentType: contentType,
		Content:     content,
		UploadedAt:  time.Now().UTC(),
	}
	as.uploads.Insert(upload.ID, upload)
	as.log.Info("file uploaded", "file_id", upload.ID, "filename", filename, "size", upload.Size)
	return upload, localAnalysis(upload)
}

func (as *analysisService) Analyze(ctx context.Context, fileID uuid.UUID, model string) (*types.DirectoryAnalysis, *apierr.Error) {
	upload, ok := as.uploads.Get(fileID)
	if !ok {
		return nil, notFound(CodeFileNotFound, "file not found")
	}

	analysis := localAnalysis(upload)
	if as.analyst == nil {
		return analysis, nil
	}

	if model == "" {
		model = as.model
	}
	reasoning, err := as.analyst.AnalyzeFile(ctx, upload, model)
	if err != nil {
		as.log.Warn("llm analysis failed, returning local analysis", "file_id", fileID, "error", err)
		return analysis, nil
	}

	analysis.SuggestedAPIStructure = suggestedAPIStructure()
	analysis.BestModel = &types.ModelInfo{
		ID:              model,
		Name:            model,
		Description:     fmt.Sprintf("AI-selected optimal model for %s", upload.ContentType),
		MaxTokens:       200000,
		CostPer1KTokens: 0.01,
		Capabilities:    []string{"ai-optimized", "auto-selected"},
	}
	analysis.ModelReasoning = reasoning
	return analysis, nil
}

func (as *analysisService) GenerateSpec(ctx context.Context, analysis *types.DirectoryAnalysis, model string) (map[string]any, error) {
	if model == "" {
		model = as.model
	}
	if as.analyst != nil {
		raw, err := as.analyst.GenerateSpec(ctx, analysis, model)
		if err != nil {
			return nil, fmt.Errorf("generate specification: %w", err)
		}
		var spec map[string]any
		if jsonErr := json.Unmarshal([]byte(raw), &spec); jsonErr == nil {
			return spec, nil
		}
		// Model replied with non-JSON prose; fall through to the canned spec.
		as.log.Warn("model reply was not valid JSON, using fallback spec")
	}
	return fallbackSpec(analysis), nil
}

func localAnalysis(upload *types.FileUpload) *types.DirectoryAnalysis {
	return &types.DirectoryAnalysis{
		Path:      "uploaded/" + upload.Filename,
		FileCount: 1,
		FileTypes: []string{upload.ContentType},
		TotalSize: formatFileSize(upload.Size),
		Structure: map[string]any{
			"root": map[string]any{
				"files": []map[string]any{{
					"name": upload.Filename,
					"size": upload.Size,
					"type": upload.ContentType,
				}},
			},
		},
		DataPatterns: detectDataPatterns(upload.Filename, upload.ContentType),
	}
}

func detectDataPatterns(filename, contentType string) []string {
	patterns := []string{}
	name := strings.ToLower(filename)

	if strings.Contains(name, "csv") || strings.Contains(contentType, "csv") {
		patterns = append(patterns, "Structured Data (CSV)")
	}
	if strings.Contains(name, "json") || strings.Contains(contentType, "json") {
		patterns = append(patterns, "JSON Data")
	}
	if strings.Contains(name, "log") {
		patterns = append(patterns, "Log Files")
	}
	if strings.Contains(name, "config") || strings.Contains(name, "settings") {
		patterns = append(patterns, "Configuration Files")
	}
	if strings.Contains(name, "image") || strings.Contains(name, "photo") {
		patterns = append(patterns, "Image Data")
	}

	if len(patterns) == 0 {
		patterns = append(patterns, "Mixed Data Types")
	}
	return patterns
}

func formatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	const k = 1024
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i > len(sizes)-1 {
		i = len(sizes) - 1
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/math.Pow(k, float64(i)), sizes[i])
}

func suggestedAPIStructure() map[string]any {
	return map[string]any{
		"endpoints": []map[string]any{{
			"path":        "/data",
			"method":      "GET",
			"description": "Retrieve processed data",
			"parameters": []map[string]any{
				{"name": "format", "type": "string", "required": false, "default": "json"},
				{"name": "limit", "type": "number", "required": false, "default": 100},
			},
		}},
		"authentication": map[string]any{"type": "api_key", "required": true},
		"rate_limits":    map[string]any{"requests_per_minute": 100, "requests_per_hour": 1000},
	}
}

func fallbackSpec(analysis *types.DirectoryAnalysis) map[string]any {
	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       fmt.Sprintf("API for %s", analysis.Path),
			"version":     "1.0.0",
			"description": "Generated API specification",
		},
		"servers": []map[string]any{
			{"url": "https://api.minam.com/v1", "description": "Production server"},
		},
		"paths": map[string]any{
			"/data": map[string]any{
				"get": map[string]any{
					"summary": "Retrieve processed data",
					"parameters": []map[string]any{
						{"name": "format", "in": "query", "schema": map[string]any{"type": "string", "default": "json"}},
						{"name": "limit", "in": "query", "schema": map[string]any{"type": "integer", "default": 100}},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "Successful response",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"type": "object"},
								},
							},
						},
					},
				},
			},
		},
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"apiKey": map[string]any{
					"type": "apiKey",
					"in":   "header",
					"name": "X-API-Key",
				},
			},
		},
		"security": []map[string]any{{"apiKey": []any{}}},
	}
}
