// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxPreviewLines is the number of source lines shown in previews
	maxPreviewLines = 12
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSourcePreview outputs the leading lines of synthesized LaTeX source.
func (p *Printer) PrintSourcePreview(source string) {
	lines := strings.Split(source, "\n")
	shown := lines
	suffix := ""
	if len(lines) > maxPreviewLines {
		shown = lines[:maxPreviewLines]
		suffix = fmt.Sprintf("\n... (%d more lines)", len(lines)-maxPreviewLines)
	}
	p.printBox("Synthesized Source", strings.Join(shown, "\n")+suffix)
}

// PrintArtifact outputs a summary of a successful compilation.
func (p *Printer) PrintArtifact(filename string, size int) {
	p.printBox("Compiled Artifact", fmt.Sprintf("File: %s\nSize: %d bytes", filename, size))
}

// PrintFailure outputs a failure kind and its diagnostic excerpt, if any.
func (p *Printer) PrintFailure(kind string, message string, diagnostic string) {
	content := fmt.Sprintf("Kind: %s\n%s", kind, message)
	if diagnostic != "" {
		content += "\n--- diagnostic ---\n" + diagnostic
	}
	p.printBox("Pipeline Failure", content)
}

// PrintExtractedProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintExtractedProfile(profile *types.ExtractedProfile) {
	var sb strings.Builder

	field := func(label string, value *string) {
		if value != nil {
			sb.WriteString(fmt.Sprintf("%s: %s\n", label, *value))
		}
	}
	field("Name", profile.Name)
	field("Email", profile.Email)
	field("Phone", profile.Phone)

	sb.WriteString(fmt.Sprintf("Skills: %d\n", len(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Languages: %d\n", len(profile.Languages)))
	sb.WriteString(fmt.Sprintf("Education entries: %d\n", len(profile.Education)))
	sb.WriteString(fmt.Sprintf("Experience entries: %d", len(profile.Experience)))

	p.printBox("Extracted Profile", sb.String())
}
