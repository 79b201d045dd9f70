package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/types"
)

const (
	analyzeSystemPrompt = "You are an expert API architect and data analyst. " +
		"Analyze files and suggest optimal API designs."
	specSystemPrompt = "You are an expert API architect. " +
		"Create complete API specifications based on data analysis."
)

// Client wraps the OpenAI chat completion API for file analysis and spec
// generation. It satisfies the services.Analyst interface.
type Client struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

// NewClient reads OPENAI_API_KEY from the environment. defaultModel is used
// when a call does not name one.
func NewClient(defaultModel string, baseLog *logger.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	if defaultModel == "" {
		defaultModel = openai.GPT4o
	}
	return &Client{
		client: openai.NewClient(apiKey),
		model:  defaultModel,
		log:    baseLog.With("client", "OpenAIClient"),
	}, nil
}

func (c *Client) AnalyzeFile(ctx context.Context, upload *types.FileUpload, model string) (string, error) {
	prompt := fmt.Sprintf(
		"Analyze this file for API generation: %s (%d bytes, type: %s). "+
			"Provide a detailed analysis including data patterns, suggested API structure, "+
			"and recommend the best AI model for processing this data.",
		upload.Filename, upload.Size, upload.ContentType,
	)
	return c.complete(ctx, model, analyzeSystemPrompt, prompt, 4000, 0.3)
}

func (c *Client) GenerateSpec(ctx context.Context, analysis *types.DirectoryAnalysis, model string) (string, error) {
	structure, _ := json.MarshalIndent(analysis.SuggestedAPIStructure, "", "  ")
	prompt := fmt.Sprintf(
		"Create a complete API specification based on this analysis:\n\n"+
			"Path: %s\nFile Types: %v\nData Patterns: %v\nSuggested Structure: %s\n\n"+
			"Generate a complete API specification including:\n"+
			"- OpenAPI 3.0 spec\n- Authentication methods\n- Rate limiting\n"+
			"- Pricing tiers (Free, Premium, Enterprise)\n- Error handling\n"+
			"- Documentation\n- SDK examples\n\nReturn as JSON.",
		analysis.Path, analysis.FileTypes, analysis.DataPatterns, structure,
	)
	return c.complete(ctx, model, specSystemPrompt, prompt, 6000, 0.2)
}

func (c *Client) complete(ctx context.Context, model, system, user string, maxTokens int, temperature float32) (string, error) {
	if model == "" {
		model = c.model
	}
	c.log.Debug("calling OpenAI", "model", model)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
