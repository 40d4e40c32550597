package pipeline

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/extraction"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/synthesis"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind FailureKind
	}{
		{
			name: "compiler validation",
			err:  &compiler.ValidationError{Field: "artifactName", Message: "bad"},
			kind: KindValidation,
		},
		{
			name: "extraction validation",
			err:  &extraction.ValidationError{Field: "mimeType", Message: "bad"},
			kind: KindValidation,
		},
		{
			name: "timeout",
			err:  &compiler.TimeoutError{Budget: 30 * time.Second, Diagnostic: "partial output"},
			kind: KindTimeout,
		},
		{
			name: "compilation",
			err:  &compiler.CompilationError{Message: "exit 1", Diagnostic: "! error"},
			kind: KindCompilation,
		},
		{
			name: "synthesis generation",
			err:  &synthesis.GenerationError{Message: "empty"},
			kind: KindGeneration,
		},
		{
			name: "extraction generation",
			err:  &extraction.GenerationError{Message: "malformed JSON"},
			kind: KindGeneration,
		},
		{
			name: "empty model response",
			err:  &llm.EmptyResponseError{Reason: "no candidates"},
			kind: KindGeneration,
		},
		{
			name: "service failure",
			err:  &llm.ServiceError{Op: "text generation", Cause: errors.New("dial tcp: refused")},
			kind: KindTransient,
		},
		{
			name: "wrapped service failure",
			err:  errors.Join(errors.New("outer"), &llm.ServiceError{Op: "x", Cause: errors.New("inner")}),
			kind: KindTransient,
		},
		{
			name: "unknown error",
			err:  errors.New("something else"),
			kind: KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindValidation))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(KindGeneration))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(KindCompilation))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatus(KindTimeout))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(KindTransient))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}

func TestDiagnosticOf(t *testing.T) {
	assert.Equal(t, "! error", DiagnosticOf(&compiler.CompilationError{Message: "m", Diagnostic: "! error"}))
	assert.Equal(t, "partial", DiagnosticOf(&compiler.TimeoutError{Budget: time.Second, Diagnostic: "partial"}))
	assert.Empty(t, DiagnosticOf(errors.New("other")))
}
