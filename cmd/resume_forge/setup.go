package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/pipeline"
	"github.com/jonathan/resume-forge/internal/types"
)

// resolveConfig merges a config file (if given) under the supplied flag values.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return flags.MergeWithDefaults(*fileCfg), nil
}

// buildPipeline constructs the injected client and compiler from configuration.
// The returned client must be closed by the caller.
func buildPipeline(ctx context.Context, cfg config.Config) (*pipeline.Pipeline, llm.Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(cfg.Model)
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	comp := compiler.New()
	if cfg.Compiler != "" {
		comp.Binary = cfg.Compiler
	}
	if cfg.TimeoutSeconds > 0 {
		comp.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	var opts []pipeline.Option
	if cfg.LLMTimeoutSeconds > 0 {
		opts = append(opts, pipeline.WithLLMTimeout(time.Duration(cfg.LLMTimeoutSeconds)*time.Second))
	}

	return pipeline.New(client, comp, opts...), client, nil
}

// loadProfile reads a ProfileSnapshot from a JSON file.
func loadProfile(path string) (types.ProfileSnapshot, error) {
	var profile types.ProfileSnapshot

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	return profile, nil
}

// loadJob reads a JobContext from a JSON file.
func loadJob(path string) (types.JobContext, error) {
	var job types.JobContext

	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("failed to parse job JSON: %w", err)
	}

	return job, nil
}
