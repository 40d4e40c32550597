package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/observability"
	"github.com/jonathan/resume-forge/internal/pipeline"
)

var (
	extractPDFPath    string
	extractOutPath    string
	extractModel      string
	extractLLMTimeout int
	extractConfigPath string
	extractVerbose    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a PDF resume",
	Long:  "Extract reads a PDF resume, asks the generative service for its structured contents, validates the response, and writes profile JSON.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractPDFPath, "pdf", "", "Path to the PDF resume (required)")
	extractCmd.Flags().StringVar(&extractOutPath, "out", "", "Output JSON path (default stdout)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Generative model name override")
	extractCmd.Flags().IntVar(&extractLLMTimeout, "llm-timeout", 0, "Generative-service timeout in seconds")
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to config JSON file")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a profile summary")

	_ = extractCmd.MarkFlagRequired("pdf")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(extractConfigPath, config.Config{
		Model:             extractModel,
		LLMTimeoutSeconds: extractLLMTimeout,
		Verbose:           extractVerbose,
	})
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(extractPDFPath)
	if err != nil {
		return fmt.Errorf("failed to read PDF file %s: %w", extractPDFPath, err)
	}

	ctx := context.Background()
	p, client, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	profile, err := p.ExtractProfile(ctx, payload, "application/pdf")
	if err != nil {
		return fmt.Errorf("extraction failed (%s): %w", pipeline.KindOf(err), err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintExtractedProfile(profile)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile JSON: %w", err)
	}
	data = append(data, '\n')

	if extractOutPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(extractOutPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile JSON: %w", err)
	}
	fmt.Printf("Wrote %s\n", extractOutPath)
	return nil
}
