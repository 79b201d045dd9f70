package types

import (
	"time"

	"github.com/google/uuid"
)

// FileUpload holds an uploaded file pending analysis. Content is kept in
// memory for the process lifetime, like every other stored entity.
type FileUpload struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"file_size"`
	ContentType string    `json:"file_type"`
	Content     []byte    `json:"-"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type ModelInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	MaxTokens       int      `json:"max_tokens"`
	CostPer1KTokens float64  `json:"cost_per_1k_tokens"`
	Capabilities    []string `json:"capabilities"`
}

// DirectoryAnalysis summarizes an upload for the API-builder flow. BestModel
// and ModelReasoning are filled only when an LLM analyst is configured.
type DirectoryAnalysis struct {
	Path                  string         `json:"path"`
	FileCount             int            `json:"file_count"`
	FileTypes             []string       `json:"file_types"`
	TotalSize             string         `json:"total_size"`
	Structure             map[string]any `json:"structure"`
	DataPatterns          []string       `json:"data_patterns"`
	SuggestedAPIStructure map[string]any `json:"suggested_api_structure,omitempty"`
	BestModel             *ModelInfo     `json:"best_model,omitempty"`
	ModelReasoning        string         `json:"model_reasoning,omitempty"`
}
