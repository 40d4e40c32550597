// Package compiler turns normalized LaTeX source into a PDF artifact by
// invoking an external compiler process inside an ephemeral workspace.
package compiler

import (
	"fmt"
	"time"
)

// ValidationError indicates a malformed request, detected before any
// workspace is provisioned or process started.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// CompilationError indicates the compiler exited non-zero or produced no
// output file. Diagnostic always carries a bounded excerpt of the compiler's
// error output.
type CompilationError struct {
	Message    string
	Diagnostic string
	Cause      error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// TimeoutError indicates the compiler exceeded its wall-clock budget and was
// forcibly terminated along with its descendants.
type TimeoutError struct {
	Budget     time.Duration
	Diagnostic string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("compilation timed out after %s", e.Budget)
}
