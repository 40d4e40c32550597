package pipeline

import (
	"context"
	"time"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/extraction"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/synthesis"
	"github.com/jonathan/resume-forge/internal/types"
)

// DefaultLLMTimeout bounds a single generative-service call. The service has
// no timeout of its own, so one is applied here rather than inherited as a gap.
const DefaultLLMTimeout = 120 * time.Second

// Status is the caller-facing outcome of a pipeline invocation.
type Status string

// Pipeline invocation statuses.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the caller-facing shape of a generation run. On success Artifact
// holds the full PDF bytes with a content-type marker and suggested filename;
// on error Kind classifies the failure and Diagnostic carries the compiler
// excerpt when one exists. The routing layer decides user-visible messaging
// and status mapping.
type Result struct {
	Status      Status
	Kind        FailureKind
	Message     string
	Artifact    []byte
	ContentType string
	Filename    string
	Source      string
	Diagnostic  string
}

// Pipeline sequences synthesis and compilation, or extraction alone. Each
// invocation is independent; the pipeline holds no per-invocation state and
// is safe for concurrent use.
type Pipeline struct {
	synthesizer *synthesis.Synthesizer
	extractor   *extraction.Extractor
	compiler    *compiler.Compiler
	llmTimeout  time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLLMTimeout overrides the per-call generative-service timeout.
func WithLLMTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.llmTimeout = d
		}
	}
}

// WithGenerateOptions overrides sampling options for synthesis.
func WithGenerateOptions(client llm.Client, opts llm.GenerateOptions) Option {
	return func(p *Pipeline) {
		p.synthesizer = synthesis.NewWithOptions(client, opts)
	}
}

// New creates a Pipeline around an injected client and compiler.
func New(client llm.Client, comp *compiler.Compiler, opts ...Option) *Pipeline {
	if comp == nil {
		comp = compiler.New()
	}

	p := &Pipeline{
		synthesizer: synthesis.New(client),
		extractor:   extraction.New(client),
		compiler:    comp,
		llmTimeout:  DefaultLLMTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GenerateResume runs synthesis followed by compilation and returns a
// structured result. No failure escapes as an unclassified error and none is
// retried here; retry policy belongs to the caller.
func (p *Pipeline) GenerateResume(ctx context.Context, profile types.ProfileSnapshot, job types.JobContext, artifactName string) Result {
	if err := profile.Validate(); err != nil {
		return failure(err)
	}
	if err := job.Validate(); err != nil {
		return failure(err)
	}

	llmCtx, cancel := context.WithTimeout(ctx, p.llmTimeout)
	source, err := p.synthesizer.Synthesize(llmCtx, profile, job)
	cancel()
	if err != nil {
		return failure(err)
	}

	compiled, err := p.compiler.Compile(ctx, compiler.Request{
		Source:       source,
		ArtifactName: artifactName,
	})
	if err != nil {
		result := failure(err)
		result.Source = source
		return result
	}

	return Result{
		Status:      StatusSuccess,
		Artifact:    compiled.PDF,
		ContentType: "application/pdf",
		Filename:    artifactName + ".pdf",
		Source:      source,
	}
}

// ExtractProfile runs extraction alone. The caller classifies failures with
// KindOf and maps them with HTTPStatus.
func (p *Pipeline) ExtractProfile(ctx context.Context, payload []byte, mimeType string) (*types.ExtractedProfile, error) {
	llmCtx, cancel := context.WithTimeout(ctx, p.llmTimeout)
	defer cancel()

	return p.extractor.Extract(llmCtx, payload, mimeType)
}

// failure converts a domain error into an error Result.
func failure(err error) Result {
	return Result{
		Status:     StatusError,
		Kind:       KindOf(err),
		Message:    err.Error(),
		Diagnostic: DiagnosticOf(err),
	}
}
