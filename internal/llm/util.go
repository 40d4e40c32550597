// Package llm - util.go provides shared utilities for model response processing.
package llm

import "strings"

// CleanFencedBlock removes markdown code fence wrappers from model output.
// Models often wrap LaTeX or JSON in ```lang ... ``` blocks even when
// instructed not to. The function is total (absence of fences is a no-op)
// and idempotent: it strips repeatedly until the text is stable, so
// CleanFencedBlock(CleanFencedBlock(s)) == CleanFencedBlock(s).
func CleanFencedBlock(text string) string {
	for {
		stripped := stripFenceOnce(text)
		if stripped == text {
			return text
		}
		text = stripped
	}
}

// stripFenceOnce removes at most one layer of fence wrapping.
func stripFenceOnce(text string) string {
	text = strings.TrimSpace(text)

	start := fenceStart(text)
	if start < 0 {
		return text
	}

	// Drop any conversational preamble and the opening fence itself.
	text = text[start+3:]

	// Drop a language identifier on the opening fence line (e.g. "latex", "json").
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {}\\") {
			text = text[idx+1:]
		}
	}

	// Everything after the closing fence is stray prose; discard it.
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}

// fenceStart returns the offset of an opening fence at the start of a line,
// or -1 when the text is not fence-wrapped.
func fenceStart(text string) int {
	if strings.HasPrefix(text, "```") {
		return 0
	}
	if idx := strings.Index(text, "\n```"); idx >= 0 {
		return idx + 1
	}
	return -1
}
