package synthesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/types"
)

// Synthesizer builds the two-part prompt from a profile snapshot and job
// context, invokes the generative service, and returns normalized LaTeX
// source. It never retries; retry policy belongs to the caller.
type Synthesizer struct {
	client llm.Client
	opts   llm.GenerateOptions
}

// New creates a Synthesizer with default sampling options.
func New(client llm.Client) *Synthesizer {
	return &Synthesizer{
		client: client,
		opts:   llm.DefaultGenerateOptions(),
	}
}

// NewWithOptions creates a Synthesizer with explicit sampling options.
func NewWithOptions(client llm.Client, opts llm.GenerateOptions) *Synthesizer {
	return &Synthesizer{client: client, opts: opts}
}

// Synthesize generates normalized LaTeX resume source tailored to the job.
// The returned text has fence markers stripped and is the only form that
// should ever be handed to the compiler.
func (s *Synthesizer) Synthesize(ctx context.Context, profile types.ProfileSnapshot, job types.JobContext) (string, error) {
	instruction := prompts.MustGet("synthesis.json", "instruction")

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize profile: %w", err)
	}

	task := prompts.Format(prompts.MustGet("synthesis.json", "task"), map[string]string{
		"Title":       job.Title,
		"Description": job.Description,
		"ProfileJSON": string(profileJSON),
	})

	raw, err := s.client.GenerateContent(ctx, instruction, task, s.opts)
	if err != nil {
		var empty *llm.EmptyResponseError
		if errors.As(err, &empty) {
			return "", &GenerationError{Message: "model returned empty output", Cause: err}
		}
		return "", err
	}

	source := llm.CleanFencedBlock(raw)
	if source == "" {
		return "", &GenerationError{Message: "model output was empty after normalization"}
	}

	return source, nil
}
