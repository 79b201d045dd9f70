package types

import "github.com/google/uuid"

// FeatureSpec declares one named, typed slot the pipeline tries to populate
// from dataset rows. DType is a free tag ("string", "number", "datetime").
type FeatureSpec struct {
	Name  string `json:"name" binding:"required"`
	DType string `json:"dtype"`
}

type ModelProfile struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Features    []FeatureSpec `json:"features"`
}

type ModelProfileCreate struct {
	Name        string        `json:"name" binding:"required"`
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Features    []FeatureSpec `json:"features"`
}
