// Package llm provides centralized generative-model configuration and client
// abstractions. The client is constructed once at process start and injected
// into the components that need it; it is never package-global state.
package llm

// Provider represents a generative text provider.
type Provider string

// Provider constants define supported providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the model used when no override is configured.
const DefaultModel = "gemini-2.0-flash-001"

// Config holds the model configuration for the application.
type Config struct {
	Provider  Provider
	ModelName string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider:  ProviderGemini,
		ModelName: DefaultModel,
	}
}

// Model returns the configured model name, falling back to the default.
func (c *Config) Model() string {
	if c.ModelName != "" {
		return c.ModelName
	}
	return DefaultModel
}

// WithModel returns a new Config with a specific model name.
func (c *Config) WithModel(model string) *Config {
	return &Config{
		Provider:  c.Provider,
		ModelName: model,
	}
}
