package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"
)

const (
	// DefaultBinary is the draw.io desktop executable looked up on PATH.
	DefaultBinary = "drawio"
	// DefaultBorder is the margin in pixels added around the exported image.
	DefaultBorder = 50
)

// Job describes one conversion of a diagram file into an image.
type Job struct {
	Input  string
	Output string
	Format string
	Border int
}

// Rasterizer converts a diagram file to another format.
type Rasterizer interface {
	Rasterize(ctx context.Context, job Job) error
}

// CommandRunner executes a program and returns its combined output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// DrawIO rasterizes through the draw.io command line.
type DrawIO struct {
	Binary string
	Runner CommandRunner
}

// NewDrawIO returns a rasterizer calling binary, or DefaultBinary when empty.
func NewDrawIO(binary string) *DrawIO {
	return &DrawIO{Binary: binary, Runner: ExecRunner{}}
}

// Args returns the command line arguments for job.
func (d *DrawIO) Args(job Job) []string {
	return []string{
		"-x",
		"-f", job.Format,
		"-o", job.Output,
		"--border", strconv.Itoa(job.Border),
		job.Input,
	}
}

// Rasterize runs the export once. A missing executable and a failed run are
// both reported as *ToolError.
func (d *DrawIO) Rasterize(ctx context.Context, job Job) error {
	if strings.TrimSpace(job.Input) == "" || strings.TrimSpace(job.Output) == "" {
		return errors.New("export: job requires input and output paths")
	}
	if strings.TrimSpace(job.Format) == "" {
		return errors.New("export: job requires a format")
	}

	binary := d.binary()
	runner := d.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	out, err := runner.Run(ctx, binary, d.Args(job)...)
	if err == nil {
		return nil
	}

	kind := ToolFailed
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		kind = ToolMissing
	}
	return &ToolError{
		Tool:   binary,
		Kind:   kind,
		Output: strings.TrimSpace(string(out)),
		Err:    err,
	}
}

func (d *DrawIO) binary() string {
	if d == nil || strings.TrimSpace(d.Binary) == "" {
		return DefaultBinary
	}
	return d.Binary
}

// ToolErrorKind classifies rasterizer failures.
type ToolErrorKind int

const (
	ToolFailed ToolErrorKind = iota
	ToolMissing
)

func (k ToolErrorKind) String() string {
	switch k {
	case ToolMissing:
		return "not found"
	default:
		return "failed"
	}
}

// ToolError reports an export tool that could not be run or exited non-zero.
type ToolError struct {
	Tool   string
	Kind   ToolErrorKind
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("export: %s %s: %v", e.Tool, e.Kind, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
