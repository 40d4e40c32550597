package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/observability"
	"github.com/jonathan/resume-forge/internal/pipeline"
	"github.com/jonathan/resume-forge/internal/types"
)

var (
	generateProfilePath string
	generateJobPath     string
	generateTitle       string
	generateDescription string
	generateOutPath     string
	generateName        string
	generateModel       string
	generateCompiler    string
	generateTimeout     int
	generateLLMTimeout  int
	generateConfigPath  string
	generateVerbose     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize and compile a tailored resume PDF",
	Long:  "Generate synthesizes LaTeX resume source from a profile and a job context, compiles it with pdflatex, and writes the resulting PDF.",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateProfilePath, "profile", "", "Path to profile JSON file (required)")
	generateCmd.Flags().StringVar(&generateJobPath, "job", "", "Path to job JSON file with title and description")
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "Job title (alternative to --job)")
	generateCmd.Flags().StringVar(&generateDescription, "description", "", "Job description (alternative to --job)")
	generateCmd.Flags().StringVar(&generateOutPath, "out", "", "Output PDF path (default <name>.pdf)")
	generateCmd.Flags().StringVar(&generateName, "name", "resume", "Artifact name used for the generated files")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Generative model name override")
	generateCmd.Flags().StringVar(&generateCompiler, "compiler", "", "LaTeX compiler binary (default pdflatex)")
	generateCmd.Flags().IntVar(&generateTimeout, "timeout", 0, "Compilation timeout in seconds")
	generateCmd.Flags().IntVar(&generateLLMTimeout, "llm-timeout", 0, "Generative-service timeout in seconds")
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config JSON file")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print source preview and diagnostics")

	_ = generateCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(generateConfigPath, config.Config{
		Model:             generateModel,
		Compiler:          generateCompiler,
		TimeoutSeconds:    generateTimeout,
		LLMTimeoutSeconds: generateLLMTimeout,
		Verbose:           generateVerbose,
	})
	if err != nil {
		return err
	}

	profile, err := loadProfile(generateProfilePath)
	if err != nil {
		return err
	}

	job, err := resolveJob()
	if err != nil {
		return err
	}

	ctx := context.Background()
	p, client, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	printer := observability.NewPrinter(os.Stdout)

	result := p.GenerateResume(ctx, profile, job, generateName)
	if cfg.Verbose && result.Source != "" {
		printer.PrintSourcePreview(result.Source)
	}

	if result.Status != pipeline.StatusSuccess {
		printer.PrintFailure(string(result.Kind), result.Message, result.Diagnostic)
		return fmt.Errorf("generation failed (%s): %s", result.Kind, result.Message)
	}

	outPath := generateOutPath
	if outPath == "" {
		outPath = result.Filename
	}
	if err := os.WriteFile(outPath, result.Artifact, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	if cfg.Verbose {
		printer.PrintArtifact(outPath, len(result.Artifact))
	} else {
		fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(result.Artifact))
	}
	return nil
}

// resolveJob builds the job context from --job or from --title/--description.
func resolveJob() (types.JobContext, error) {
	if generateJobPath != "" {
		return loadJob(generateJobPath)
	}
	if generateTitle == "" || generateDescription == "" {
		return types.JobContext{}, fmt.Errorf("either --job or both --title and --description are required")
	}
	return types.JobContext{Title: generateTitle, Description: generateDescription}, nil
}
