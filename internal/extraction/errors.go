// Package extraction turns an uploaded PDF resume into a validated,
// deduplicated structured profile via the generative service's
// document-understanding mode.
package extraction

import "fmt"

// ValidationError indicates the caller's input was malformed. It is raised
// before any external call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// GenerationError indicates the model produced nothing usable: empty output,
// malformed JSON, or JSON that does not match the profile schema.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
