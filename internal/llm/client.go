package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerateOptions controls sampling for a single generation call.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultGenerateOptions returns the sampling defaults used by the pipeline:
// moderate temperature for controlled variability, generous output budget.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Temperature:     0.5,
		MaxOutputTokens: 20000,
	}
}

// Client is an abstraction over generative text providers.
type Client interface {
	// GenerateContent generates text from an instruction block and a task block.
	GenerateContent(ctx context.Context, instruction, task string, opts GenerateOptions) (string, error)
	// GenerateDocument generates text from an instruction block, a task block,
	// and an attached binary document (e.g., a PDF resume).
	GenerateDocument(ctx context.Context, instruction, task string, payload []byte, mimeType string, opts GenerateOptions) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a new generative client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text from an instruction block and a task block.
func (c *GeminiClient) GenerateContent(ctx context.Context, instruction, task string, opts GenerateOptions) (string, error) {
	model, err := c.model(opts)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(instruction), genai.Text(task))
	if err != nil {
		return "", &ServiceError{Op: "text generation", Cause: err}
	}

	return extractTextFromResponse(resp)
}

// GenerateDocument generates text from prompts plus an attached binary document.
func (c *GeminiClient) GenerateDocument(ctx context.Context, instruction, task string, payload []byte, mimeType string, opts GenerateOptions) (string, error) {
	model, err := c.model(opts)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx,
		genai.Text(instruction),
		genai.Text(task),
		genai.Blob{MIMEType: mimeType, Data: payload},
	)
	if err != nil {
		return "", &ServiceError{Op: "document understanding", Cause: err}
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// model resolves the configured model name and applies sampling options.
func (c *GeminiClient) model(opts GenerateOptions) (*genai.GenerativeModel, error) {
	modelName := c.config.Model()
	if modelName == "" {
		return nil, fmt.Errorf("no model configured")
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(opts.Temperature)
	if opts.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxOutputTokens)
	}
	return model, nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &EmptyResponseError{Reason: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &EmptyResponseError{Reason: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &EmptyResponseError{Reason: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
