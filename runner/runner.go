// Package runner drives the external .NET test runner for one Test262
// group at a time.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/asynkron/test262-reporter/logging"
)

// Config contains group runner configuration
type Config struct {
	ProjectFile  string // Test project passed to `dotnet test`
	ResultsDir   string // Directory TRX files are written into
	DotnetBinary string // Defaults to "dotnet"
	FilterPrefix string // Fully-qualified name prefix for the --filter expression
	WorkDir      string // Directory the runner executes from
	Log          log.Logger
	FileLogger   *logging.FileLogger // Optional; captures the runner's console output
}

// GroupRunner invokes `dotnet test` scoped to a single group and
// directs its TRX output to <ResultsDir>/<group>.trx.
type GroupRunner struct {
	cfg    Config
	tracer trace.Tracer
}

// NewGroupRunner validates the config and returns a runner.
func NewGroupRunner(cfg Config) (*GroupRunner, error) {
	if cfg.ProjectFile == "" {
		return nil, fmt.Errorf("project file is required")
	}
	if cfg.ResultsDir == "" {
		return nil, fmt.Errorf("results directory is required")
	}
	if cfg.FilterPrefix == "" {
		return nil, fmt.Errorf("filter prefix is required")
	}
	if cfg.DotnetBinary == "" {
		cfg.DotnetBinary = "dotnet"
	}
	if cfg.Log == nil {
		cfg.Log = log.New()
		cfg.Log.Error("No logger provided, using default")
	}

	return &GroupRunner{
		cfg:    cfg,
		tracer: otel.Tracer("test262-reporter/runner"),
	}, nil
}

// ResultPath returns the TRX path the external runner is asked to
// write for group. Whether the file exists afterwards is for the TRX
// reader to find out.
func (r *GroupRunner) ResultPath(group string) string {
	return filepath.Join(r.cfg.ResultsDir, group+".trx")
}

// RunGroup runs the external test runner for one group, blocking until
// it exits. The runner's exit code is deliberately not surfaced: a
// non-zero exit usually just means some tests failed, and the TRX file
// still carries the partial counts. Exec errors (missing binary, bad
// project path) leave no TRX file behind, so the group reports 0/0.
func (r *GroupRunner) RunGroup(ctx context.Context, group string) {
	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("group %s", group))
	defer span.End()

	if err := os.MkdirAll(r.cfg.ResultsDir, 0755); err != nil {
		r.cfg.Log.Error("Failed to create results directory", "dir", r.cfg.ResultsDir, "error", err)
		return
	}

	trxName := group + ".trx"
	cmd := exec.CommandContext(ctx, r.cfg.DotnetBinary, "test", r.cfg.ProjectFile,
		"--filter", fmt.Sprintf("FullyQualifiedName=%s.%s", r.cfg.FilterPrefix, group),
		"--logger", fmt.Sprintf("trx;LogFileName=%s", trxName),
		"--results-directory", r.cfg.ResultsDir,
	)
	cmd.Dir = r.cfg.WorkDir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	r.cfg.Log.Debug("Running group command",
		"group", group,
		"dir", cmd.Dir,
		"command", cmd.String())

	if err := cmd.Run(); err != nil {
		r.cfg.Log.Debug("External runner exited with error", "group", group, "error", err)
	}

	if r.cfg.FileLogger != nil {
		if err := r.cfg.FileLogger.LogGroupOutput(group, output.Bytes()); err != nil {
			r.cfg.Log.Error("Failed to store runner output", "group", group, "error", err)
		}
	}
}
