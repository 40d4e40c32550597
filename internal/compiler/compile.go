package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBinary is the external compiler invoked when none is configured.
	DefaultBinary = "pdflatex"
	// DefaultTimeout is the wall-clock budget for one compilation.
	DefaultTimeout = 30 * time.Second

	// maxDiagnosticBytes bounds the size of the diagnostic excerpt.
	maxDiagnosticBytes = 4096
	// waitDelay bounds how long Wait blocks on lingering pipe readers after kill.
	waitDelay = 5 * time.Second

	workspacePrefix = "resume-forge-"
)

// Request describes one compilation invocation.
type Request struct {
	// Source is normalized LaTeX source. Empty source is compiled anyway;
	// the compiler's own error reporting handles degenerate input.
	Source string
	// ArtifactName names the source and output files inside the workspace.
	// It must be filesystem-safe: no path separators, no traversal.
	ArtifactName string
	// Timeout overrides the compiler's default wall-clock budget when > 0.
	Timeout time.Duration
}

// Result is a successful compilation outcome. PDF holds the full artifact
// bytes, read into memory before the workspace is destroyed.
type Result struct {
	PDF []byte
	Log string
}

// Compiler invokes the external compiler process. The zero value is usable;
// fields override the defaults.
type Compiler struct {
	// Binary is the compiler executable looked up on PATH.
	Binary string
	// Timeout is the default wall-clock budget per compilation.
	Timeout time.Duration
	// TempDir is the parent directory for workspaces ("" means the system default).
	TempDir string
}

// New creates a Compiler with default settings.
func New() *Compiler {
	return &Compiler{Binary: DefaultBinary, Timeout: DefaultTimeout}
}

// Compile runs the full Provisioning -> Compiling -> Inspecting -> Cleaned
// sequence for one request. The workspace is removed on every exit path:
// success, compiler error, timeout, or panic unwinding.
func (c *Compiler) Compile(ctx context.Context, req Request) (*Result, error) {
	name, err := sanitizeArtifactName(req.ArtifactName)
	if err != nil {
		return nil, err
	}

	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, &CompilationError{
			Message: fmt.Sprintf("%s not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)", binary),
			Cause:   err,
		}
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.Timeout
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Provisioning. MkdirTemp's random suffix plus a per-call UUID guarantees
	// concurrent invocations never share a workspace path.
	workspace, err := os.MkdirTemp(c.TempDir, workspacePrefix+uuid.NewString()+"-")
	if err != nil {
		return nil, &CompilationError{Message: "failed to provision workspace", Cause: err}
	}
	defer os.RemoveAll(workspace)

	texPath := filepath.Join(workspace, name+".tex")
	if err := os.WriteFile(texPath, []byte(req.Source), 0644); err != nil {
		return nil, &CompilationError{Message: "failed to write source file", Cause: err}
	}

	// Compiling. The child runs non-interactively in its own process group so
	// a timeout kills it and all of its descendants, not just the parent.
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, "-interaction=nonstopmode", "-output-directory", workspace, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	setupProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = waitDelay

	runErr := cmd.Run()

	diagnostic := func() string {
		return buildDiagnostic(stderr.String(), stdout.String(), readAuxLog(workspace, name))
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, &TimeoutError{Budget: timeout, Diagnostic: diagnostic()}
	}

	// Inspecting. Success requires exit code zero AND the output file present.
	if runErr != nil {
		return nil, &CompilationError{
			Message:    "compiler exited with an error",
			Diagnostic: diagnostic(),
			Cause:      runErr,
		}
	}

	pdfPath := filepath.Join(workspace, name+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, &CompilationError{
			Message:    "compiler exited cleanly but produced no output file",
			Diagnostic: diagnostic(),
			Cause:      err,
		}
	}

	// Read the artifact fully into memory before the deferred cleanup
	// destroys the workspace.
	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, &CompilationError{Message: "failed to read output file", Cause: err}
	}

	return &Result{PDF: pdf, Log: stdout.String() + stderr.String()}, nil
}

// sanitizeArtifactName rejects names that could escape the workspace.
func sanitizeArtifactName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: "artifactName", Message: "must not be empty"}
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return "", &ValidationError{Field: "artifactName", Message: "must not contain path separators"}
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return "", &ValidationError{Field: "artifactName", Message: "must not contain directory traversal"}
	}
	return name, nil
}

// readAuxLog returns the contents of the compiler's auxiliary log file, if any.
func readAuxLog(workspace, name string) string {
	data, err := os.ReadFile(filepath.Join(workspace, name+".log"))
	if err != nil {
		return ""
	}
	return string(data)
}

// buildDiagnostic assembles a bounded, never-empty diagnostic excerpt from the
// process streams and the auxiliary log file.
func buildDiagnostic(parts ...string) string {
	combined := strings.TrimSpace(strings.Join(parts, "\n"))
	if combined == "" {
		return "compiler produced no diagnostic output"
	}
	if len(combined) > maxDiagnosticBytes {
		// LaTeX reports errors near the end of its output; keep the tail.
		combined = "... (truncated)\n" + combined[len(combined)-maxDiagnosticBytes:]
	}
	return combined
}
