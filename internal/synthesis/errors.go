// Package synthesis generates tailored LaTeX resume source from a profile
// snapshot and a job context via the generative text service.
package synthesis

import "fmt"

// GenerationError indicates the model produced nothing usable as resume source.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("synthesis error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("synthesis error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
