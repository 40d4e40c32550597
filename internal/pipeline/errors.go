// Package pipeline provides the high-level orchestration for resume synthesis,
// compilation, and profile extraction, and maps domain failures to externally
// visible error kinds.
package pipeline

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/extraction"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/synthesis"
)

// FailureKind is the externally visible classification of a pipeline failure.
type FailureKind string

// Failure kinds surfaced across the pipeline boundary.
const (
	// KindGeneration: the model produced nothing usable.
	KindGeneration FailureKind = "generation_failure"
	// KindValidation: caller input was malformed before any external call.
	KindValidation FailureKind = "validation_failure"
	// KindCompilation: the external compiler exited non-zero or produced no output.
	KindCompilation FailureKind = "compilation_error"
	// KindTimeout: the compiler exceeded its wall-clock budget.
	KindTimeout FailureKind = "timeout"
	// KindTransient: network or service-level error calling the generative service.
	KindTransient FailureKind = "transient_service_failure"
	// KindInternal: anything the taxonomy does not account for.
	KindInternal FailureKind = "internal_error"
)

// KindOf classifies any error produced by this core into a FailureKind.
func KindOf(err error) FailureKind {
	var (
		compValErr *compiler.ValidationError
		extValErr  *extraction.ValidationError
		valErrs    validator.ValidationErrors
		timeoutErr *compiler.TimeoutError
		compErr    *compiler.CompilationError
		synGenErr  *synthesis.GenerationError
		extGenErr  *extraction.GenerationError
		emptyErr   *llm.EmptyResponseError
		svcErr     *llm.ServiceError
	)

	switch {
	case errors.As(err, &compValErr), errors.As(err, &extValErr), errors.As(err, &valErrs):
		return KindValidation
	case errors.As(err, &timeoutErr):
		return KindTimeout
	case errors.As(err, &compErr):
		return KindCompilation
	case errors.As(err, &synGenErr), errors.As(err, &extGenErr), errors.As(err, &emptyErr):
		return KindGeneration
	case errors.As(err, &svcErr):
		return KindTransient
	default:
		return KindInternal
	}
}

// HTTPStatus returns the status code the (out-of-scope) routing layer should
// map a failure kind to. The core itself never writes HTTP responses.
func HTTPStatus(kind FailureKind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindGeneration, KindCompilation:
		return http.StatusUnprocessableEntity
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindTransient:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// DiagnosticOf extracts the diagnostic excerpt carried by compilation and
// timeout failures; other errors yield an empty string.
func DiagnosticOf(err error) string {
	var compErr *compiler.CompilationError
	if errors.As(err, &compErr) {
		return compErr.Diagnostic
	}
	var timeoutErr *compiler.TimeoutError
	if errors.As(err, &timeoutErr) {
		return timeoutErr.Diagnostic
	}
	return ""
}
