package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/pipeline"
)

var (
	batchProfilePath string
	batchJobsDir     string
	batchOutDir      string
	batchConcurrency int
	batchModel       string
	batchCompiler    string
	batchTimeout     int
	batchLLMTimeout  int
	batchConfigPath  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate resumes for a directory of job descriptions",
	Long:  "Batch runs one generation per job JSON file in a directory. Invocations are independent and run concurrently; each compiles in its own isolated workspace.",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchProfilePath, "profile", "", "Path to profile JSON file (required)")
	batchCmd.Flags().StringVar(&batchJobsDir, "jobs", "", "Directory of job JSON files (required)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", ".", "Directory to write PDFs into")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum concurrent generations")
	batchCmd.Flags().StringVar(&batchModel, "model", "", "Generative model name override")
	batchCmd.Flags().StringVar(&batchCompiler, "compiler", "", "LaTeX compiler binary (default pdflatex)")
	batchCmd.Flags().IntVar(&batchTimeout, "timeout", 0, "Compilation timeout in seconds")
	batchCmd.Flags().IntVar(&batchLLMTimeout, "llm-timeout", 0, "Generative-service timeout in seconds")
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config JSON file")

	_ = batchCmd.MarkFlagRequired("profile")
	_ = batchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(batchConfigPath, config.Config{
		Model:             batchModel,
		Compiler:          batchCompiler,
		TimeoutSeconds:    batchTimeout,
		LLMTimeoutSeconds: batchLLMTimeout,
	})
	if err != nil {
		return err
	}

	profile, err := loadProfile(batchProfilePath)
	if err != nil {
		return err
	}

	jobPaths, err := listJobFiles(batchJobsDir)
	if err != nil {
		return err
	}
	if len(jobPaths) == 0 {
		return fmt.Errorf("no job JSON files found in %s", batchJobsDir)
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx := context.Background()
	p, client, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	g, gctx := errgroup.WithContext(ctx)
	if batchConcurrency > 0 {
		g.SetLimit(batchConcurrency)
	}

	for _, jobPath := range jobPaths {
		jobPath := jobPath
		g.Go(func() error {
			job, err := loadJob(jobPath)
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(filepath.Base(jobPath), filepath.Ext(jobPath))
			result := p.GenerateResume(gctx, profile, job, name)
			if result.Status != pipeline.StatusSuccess {
				return fmt.Errorf("%s: %s: %s", name, result.Kind, result.Message)
			}

			outPath := filepath.Join(batchOutDir, result.Filename)
			if err := os.WriteFile(outPath, result.Artifact, 0644); err != nil {
				return fmt.Errorf("%s: failed to write PDF: %w", name, err)
			}
			fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(result.Artifact))
			return nil
		})
	}

	return g.Wait()
}

// listJobFiles returns the sorted .json files directly under dir.
func listJobFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
