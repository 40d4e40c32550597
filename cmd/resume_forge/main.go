// Package main provides the entry point for the resume-forge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_forge",
	Short: "Resume Forge document pipeline",
	Long:  "Resume Forge synthesizes tailored one-page LaTeX resumes from structured profiles and job descriptions, compiles them to PDF, and extracts structured profiles back out of uploaded PDF resumes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
