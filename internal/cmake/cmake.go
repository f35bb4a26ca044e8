// Package cmake wraps the external cmake executable: configuration runs,
// capability probing, and generator preconditions.
package cmake

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Tool invokes the cmake executable for a single source tree.
type Tool struct {
	execName  string
	sourceDir string
	out       io.Writer
	verbose   bool
}

// New creates a Tool for the given source directory. Subprocess output is
// streamed to stdout.
func New(sourceDir string) *Tool {
	return NewWithWriter(sourceDir, os.Stdout)
}

// NewWithWriter creates a Tool that streams subprocess output to out
// (for testing, or to route output through the CLI writer).
func NewWithWriter(sourceDir string, out io.Writer) *Tool {
	return &Tool{
		execName:  "cmake",
		sourceDir: sourceDir,
		out:       out,
	}
}

// SetVerbose enables echoing of the full command line before each run.
func (t *Tool) SetVerbose(v bool) {
	t.verbose = v
}

// SetExecutable overrides the cmake executable name or path (for testing).
func (t *Tool) SetExecutable(name string) {
	t.execName = name
}

// ConfigureRequest describes a single configuration attempt.
type ConfigureRequest struct {
	BuildDir  string   // Per-config cache directory, created if missing
	Define    string   // Cache variable that receives the config name
	Value     string   // Config identifier
	Generator string   // Optional forced generator
	ExtraArgs []string // Extra arguments appended verbatim
}

// Configure runs the configuration step for a single config. Combined
// stdout+stderr is streamed to the Tool's writer while being captured, and
// the captured text is returned together with the run error. On launch
// failure whatever partial output exists is still returned.
func (t *Tool) Configure(ctx context.Context, req ConfigureRequest) (string, error) {
	if err := os.MkdirAll(req.BuildDir, 0o755); err != nil {
		return "", fmt.Errorf("create build directory: %w", err)
	}

	args := []string{"-S", t.sourceDir, "-B", req.BuildDir, fmt.Sprintf("-D%s=%s", req.Define, req.Value)}
	if req.Generator != "" {
		args = append(args, "-G", req.Generator)
	}
	args = append(args, req.ExtraArgs...)

	cmd := exec.CommandContext(ctx, t.execName, args...)
	cmd.Env = os.Environ()

	// Stream while capturing. Stderr is merged into the same stream so the
	// captured blob matches what the user saw, in order.
	var captured bytes.Buffer
	cmd.Stdout = io.MultiWriter(t.out, &captured)
	cmd.Stderr = io.MultiWriter(t.out, &captured)

	if t.verbose {
		fmt.Fprintf(t.out, "Running: %s %s\n", t.execName, strings.Join(args, " "))
	}

	err := cmd.Run()
	return captured.String(), err
}

// Version returns the first line of `cmake --version`, or an empty string
// when cmake is unavailable.
func (t *Tool) Version(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, t.execName, "--version")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}
