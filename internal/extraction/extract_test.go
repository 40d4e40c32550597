package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-forge/internal/llm"
)

// stubClient is a canned-response llm.Client that records whether it was called.
type stubClient struct {
	response string
	err      error
	called   bool
	payload  []byte
	mimeType string
}

func (s *stubClient) GenerateContent(_ context.Context, _, _ string, _ llm.GenerateOptions) (string, error) {
	s.called = true
	return s.response, s.err
}

func (s *stubClient) GenerateDocument(_ context.Context, _, _ string, payload []byte, mimeType string, _ llm.GenerateOptions) (string, error) {
	s.called = true
	s.payload = payload
	s.mimeType = mimeType
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

var fakePDF = []byte("%PDF-1.4 fake document")

func TestExtract_RejectsBadInputWithoutModelCall(t *testing.T) {
	tests := []struct {
		name     string
		payload  []byte
		mimeType string
	}{
		{name: "wrong media type", payload: fakePDF, mimeType: "text/plain"},
		{name: "empty media type", payload: fakePDF, mimeType: ""},
		{name: "empty payload", payload: nil, mimeType: "application/pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubClient{response: "{}"}
			e := New(stub)

			_, err := e.Extract(context.Background(), tt.payload, tt.mimeType)

			var valErr *ValidationError
			assert.True(t, errors.As(err, &valErr), "expected ValidationError, got %v", err)
			assert.False(t, stub.called, "no external call should be made on bad input")
		})
	}
}

func TestExtract_MediaTypeParametersTolerated(t *testing.T) {
	stub := &stubClient{response: "{}"}
	e := New(stub)

	_, err := e.Extract(context.Background(), fakePDF, "application/pdf; charset=binary")
	require.NoError(t, err)
	assert.True(t, stub.called)
	assert.Equal(t, "application/pdf", stub.mimeType)
}

func TestExtract_DeduplicatesListFields(t *testing.T) {
	stub := &stubClient{response: `{
		"name": "Ada",
		"skills": ["Python", "Python", "SQL"],
		"languages": ["English", "English"],
		"links": ["https://a.example", "https://a.example", "https://b.example"]
	}`}
	e := New(stub)

	profile, err := e.Extract(context.Background(), fakePDF, "application/pdf")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Python", "SQL"}, profile.Skills)
	assert.ElementsMatch(t, []string{"English"}, profile.Languages)
	assert.ElementsMatch(t, []string{"https://a.example", "https://b.example"}, profile.Links)
}

func TestExtract_NullPreservation(t *testing.T) {
	stub := &stubClient{response: `{"name": "Ada"}`}
	e := New(stub)

	profile, err := e.Extract(context.Background(), fakePDF, "application/pdf")
	require.NoError(t, err)

	require.NotNil(t, profile.Name)
	assert.Equal(t, "Ada", *profile.Name)

	// Absent fields stay nil, never coerced to "" or empty list.
	assert.Nil(t, profile.Email)
	assert.Nil(t, profile.Phone)
	assert.Nil(t, profile.Address)
	assert.Nil(t, profile.Skills)
	assert.Nil(t, profile.Languages)
	assert.Nil(t, profile.Links)
	assert.Nil(t, profile.Education)
	assert.Nil(t, profile.Experience)
}

func TestExtract_FencedJSONIsNormalized(t *testing.T) {
	stub := &stubClient{response: "```json\n{\"name\": \"Ada\", \"skills\": [\"Go\"]}\n```"}
	e := New(stub)

	profile, err := e.Extract(context.Background(), fakePDF, "application/pdf")
	require.NoError(t, err)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Ada", *profile.Name)
	assert.Equal(t, []string{"Go"}, profile.Skills)
}

func TestExtract_MalformedJSONIsGenerationError(t *testing.T) {
	stub := &stubClient{response: "I could not find any resume content in this document."}
	e := New(stub)

	_, err := e.Extract(context.Background(), fakePDF, "application/pdf")

	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr), "expected GenerationError, got %v", err)
}

func TestExtract_SchemaViolationIsGenerationError(t *testing.T) {
	stub := &stubClient{response: `{"skills": "Go"}`}
	e := New(stub)

	_, err := e.Extract(context.Background(), fakePDF, "application/pdf")

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr), "expected GenerationError, got %v", err)
	assert.Contains(t, genErr.Error(), "schema")
}

func TestExtract_EmptyModelOutputIsGenerationError(t *testing.T) {
	stub := &stubClient{response: "```\n```"}
	e := New(stub)

	_, err := e.Extract(context.Background(), fakePDF, "application/pdf")

	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr), "expected GenerationError, got %v", err)
}

func TestExtract_ServiceErrorPropagates(t *testing.T) {
	stub := &stubClient{err: &llm.ServiceError{Op: "document understanding", Cause: errors.New("503")}}
	e := New(stub)

	_, err := e.Extract(context.Background(), fakePDF, "application/pdf")

	var svcErr *llm.ServiceError
	assert.True(t, errors.As(err, &svcErr))
}

func TestExtract_NumericYearsCoerced(t *testing.T) {
	stub := &stubClient{response: `{
		"education": [{"degree": "BSc", "university": "UoL", "year": 1835}],
		"projects": [{"name": "Engine", "description": "Analytical", "year": "1843"}]
	}`}
	e := New(stub)

	profile, err := e.Extract(context.Background(), fakePDF, "application/pdf")
	require.NoError(t, err)

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "1835", profile.Education[0].Year)
	assert.Equal(t, "UoL", profile.Education[0].Institution)

	require.Len(t, profile.Projects, 1)
	assert.Equal(t, "1843", profile.Projects[0].Year)
}

func TestDedupStrings(t *testing.T) {
	assert.Nil(t, dedupStrings(nil))
	assert.Equal(t, []string{}, dedupStrings([]string{}))
	assert.Equal(t, []string{"Python", "SQL"}, dedupStrings([]string{"Python", "Python", "SQL"}))
	assert.Equal(t, []string{"a", "b", "c"}, dedupStrings([]string{"a", "b", "a", "c", "b"}))
}
