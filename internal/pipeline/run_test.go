package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/types"
)

// stubClient is a canned-response llm.Client that records whether it was called.
type stubClient struct {
	response string
	err      error
	called   bool
}

func (s *stubClient) GenerateContent(_ context.Context, _, _ string, _ llm.GenerateOptions) (string, error) {
	s.called = true
	return s.response, s.err
}

func (s *stubClient) GenerateDocument(_ context.Context, _, _ string, _ []byte, _ string, _ llm.GenerateOptions) (string, error) {
	s.called = true
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func validProfile() types.ProfileSnapshot {
	return types.ProfileSnapshot{Name: "A", Email: "a@example.com", Skills: []string{"Go"}}
}

func validJob() types.JobContext {
	return types.JobContext{Title: "Engineer", Description: "Build services"}
}

func TestGenerateResume_InvalidProfileNoExternalCall(t *testing.T) {
	stub := &stubClient{response: `\documentclass{article}`}
	p := New(stub, compiler.New())

	result := p.GenerateResume(context.Background(), types.ProfileSnapshot{}, validJob(), "resume")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, KindValidation, result.Kind)
	assert.Empty(t, result.Artifact)
	assert.False(t, stub.called, "validation failures must not reach the model")
}

func TestGenerateResume_InvalidJob(t *testing.T) {
	stub := &stubClient{response: `\documentclass{article}`}
	p := New(stub, compiler.New())

	result := p.GenerateResume(context.Background(), validProfile(), types.JobContext{}, "resume")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, KindValidation, result.Kind)
	assert.False(t, stub.called)
}

func TestGenerateResume_SynthesisFailure(t *testing.T) {
	stub := &stubClient{response: ""}
	p := New(stub, compiler.New())

	result := p.GenerateResume(context.Background(), validProfile(), validJob(), "resume")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, KindGeneration, result.Kind)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, result.Artifact)
}

func TestGenerateResume_ServiceFailure(t *testing.T) {
	stub := &stubClient{err: &llm.ServiceError{Op: "text generation", Cause: errors.New("503")}}
	p := New(stub, compiler.New())

	result := p.GenerateResume(context.Background(), validProfile(), validJob(), "resume")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, KindTransient, result.Kind)
}

func TestExtractProfile_PassesThrough(t *testing.T) {
	stub := &stubClient{response: `{"name": "Ada", "skills": ["Go", "Go"]}`}
	p := New(stub, compiler.New())

	profile, err := p.ExtractProfile(context.Background(), []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Ada", *profile.Name)
	assert.Equal(t, []string{"Go"}, profile.Skills)
}

func TestExtractProfile_ValidationKind(t *testing.T) {
	stub := &stubClient{response: "{}"}
	p := New(stub, compiler.New())

	_, err := p.ExtractProfile(context.Background(), nil, "application/pdf")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.False(t, stub.called)
}
