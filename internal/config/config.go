// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Behavior
	APIKey   string `json:"api_key,omitempty"`  // Gemini API key
	Model    string `json:"model,omitempty"`    // Model name override
	Compiler string `json:"compiler,omitempty"` // Compiler binary (default pdflatex)
	Verbose  bool   `json:"verbose,omitempty"`  // Print detailed debug information

	// Limits
	TimeoutSeconds    int `json:"timeout_seconds,omitempty"`     // Compilation wall-clock budget
	LLMTimeoutSeconds int `json:"llm_timeout_seconds,omitempty"` // Generative-service call budget
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.LLMTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'llm_timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Compiler == "" {
		result.Compiler = defaults.Compiler
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.LLMTimeoutSeconds == 0 {
		result.LLMTimeoutSeconds = defaults.LLMTimeoutSeconds
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
