package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"mime"

	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/schemas"
	"github.com/jonathan/resume-forge/internal/types"
)

// pdfMediaType is the only accepted upload media type.
const pdfMediaType = "application/pdf"

// Extractor parses uploaded resume documents into structured profiles.
type Extractor struct {
	client llm.Client
	opts   llm.GenerateOptions
}

// New creates an Extractor with default sampling options.
func New(client llm.Client) *Extractor {
	return &Extractor{
		client: client,
		opts:   llm.DefaultGenerateOptions(),
	}
}

// Extract validates the payload, invokes the model in document-input mode,
// and coerces the JSON result into an ExtractedProfile. Missing fields stay
// nil; list-valued atomic fields are deduplicated by value.
func (e *Extractor) Extract(ctx context.Context, payload []byte, mimeType string) (*types.ExtractedProfile, error) {
	// Cheap local validation first; no external call on bad input.
	if !isPDFMediaType(mimeType) {
		return nil, &ValidationError{Field: "mimeType", Message: "only application/pdf is accepted"}
	}
	if len(payload) == 0 {
		return nil, &ValidationError{Field: "payload", Message: "document must not be empty"}
	}

	instruction := prompts.MustGet("extraction.json", "instruction")
	task := prompts.MustGet("extraction.json", "task")

	raw, err := e.client.GenerateDocument(ctx, instruction, task, payload, pdfMediaType, e.opts)
	if err != nil {
		var empty *llm.EmptyResponseError
		if errors.As(err, &empty) {
			return nil, &GenerationError{Message: "model returned empty output", Cause: err}
		}
		return nil, err
	}

	cleaned := llm.CleanFencedBlock(raw)
	if cleaned == "" {
		return nil, &GenerationError{Message: "model output was empty after normalization"}
	}

	if err := schemas.ValidateExtractedProfile([]byte(cleaned)); err != nil {
		var valErr *schemas.ValidationError
		if errors.As(err, &valErr) {
			return nil, &GenerationError{Message: "model output does not match the profile schema", Cause: err}
		}
		return nil, &GenerationError{Message: "model returned malformed JSON", Cause: err}
	}

	var parsed rawProfile
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &GenerationError{Message: "failed to decode model JSON", Cause: err}
	}

	return parsed.toExtractedProfile(), nil
}

// isPDFMediaType reports whether the declared media type is PDF, tolerating
// parameters such as "; charset=binary".
func isPDFMediaType(mimeType string) bool {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return false
	}
	return mt == pdfMediaType
}

// dedupStrings collapses duplicate values, preserving first-occurrence order.
// A nil input stays nil so absence is never coerced into an empty list.
func dedupStrings(values []string) []string {
	if values == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
