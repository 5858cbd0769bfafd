// Package reporter generates a pass/total summary for the Test262
// groups tracked in the engine's tracking document. Each group is run
// separately through the external test runner; the TRX file each run
// leaves behind is the sole source of the group's counts.
package reporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/asynkron/test262-reporter/logging"
	"github.com/asynkron/test262-reporter/metrics"
	"github.com/asynkron/test262-reporter/registry"
	"github.com/asynkron/test262-reporter/runner"
	"github.com/asynkron/test262-reporter/trx"
	"github.com/asynkron/test262-reporter/types"
)

// Reporter drives the whole pipeline: group list, per-group runner
// invocation, TRX parsing, summary output. Groups run strictly
// sequentially, in document order, and one bad group never blocks
// reporting on the rest.
type Reporter struct {
	config     *Config
	version    string
	runID      string
	registry   *registry.Registry
	runner     *runner.GroupRunner
	fileLogger *logging.FileLogger
	formatter  ResultFormatter
	tracer     trace.Tracer

	// Outcome of the last Run, for callers that want more than the
	// streamed lines.
	results []types.GroupResult
	stats   types.RunStats

	// Result stream (the report itself) and diagnostic stream are
	// distinct: stdout carries exactly one line per group, stderr
	// carries progress and everything else.
	stdout io.Writer
	stderr io.Writer
}

func New(config *Config, version string) (*Reporter, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.Debug("Creating reporter with config",
		"groupsFile", config.GroupsFile,
		"resultsDir", config.ResultsDir,
		"project", config.ProjectFile,
		"filterPrefix", config.FilterPrefix,
		"rootDir", config.RootDir)

	reg, err := registry.New(registry.Config{
		Log:        config.Log,
		GroupsFile: config.GroupsFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}

	runID := uuid.New().String()
	fileLogger, err := logging.NewFileLogger(config.LogDir, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to create file logger: %w", err)
	}

	groupRunner, err := runner.NewGroupRunner(runner.Config{
		ProjectFile:  config.ProjectFile,
		ResultsDir:   config.ResultsDir,
		DotnetBinary: config.DotnetBinary,
		FilterPrefix: config.FilterPrefix,
		WorkDir:      config.RootDir,
		Log:          config.Log,
		FileLogger:   fileLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create group runner: %w", err)
	}

	return &Reporter{
		config:     config,
		version:    version,
		runID:      runID,
		registry:   reg,
		runner:     groupRunner,
		fileLogger: fileLogger,
		formatter:  NewConsoleResultFormatter(config.Log, os.Stderr),
		tracer:     otel.Tracer("test262-reporter"),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}, nil
}

// Run executes the report once. It returns NoGroupsError when the
// tracking document yields nothing to run; failures inside groups are
// content, not errors, so a report full of 0/0 lines still returns nil.
func (r *Reporter) Run(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "report")
	defer span.End()

	groups := r.registry.Groups()
	if len(groups) == 0 {
		fmt.Fprintln(r.stderr, "No groups found to run.")
		return NewNoGroupsError(r.config.GroupsFile)
	}

	r.config.Log.Info("Starting report run",
		"run_id", r.runID,
		"groups", len(groups),
		"logs", r.fileLogger.RunDir())

	start := time.Now()
	var stats types.RunStats
	results := make([]types.GroupResult, 0, len(groups))

	for i, group := range groups {
		// Progress goes to the diagnostic stream so the report on
		// stdout stays machine-pasteable. Stderr is unbuffered, the
		// line is visible before the runner starts.
		fmt.Fprintf(r.stderr, "[%d/%d] Running %s...\n", i+1, len(groups), group)

		groupStart := time.Now()
		r.runner.RunGroup(ctx, group)
		summary := trx.ReadSummary(r.runner.ResultPath(group))

		result := types.GroupResult{
			Group:    group,
			Passed:   summary.Passed,
			Failed:   summary.Failed,
			Skipped:  summary.Skipped,
			Duration: time.Since(groupStart),
		}
		line := result.Summary()
		fmt.Fprintln(r.stdout, line)

		r.fileLogger.LogSummary(line)
		metrics.RecordGroup(r.runID, result)
		stats.Add(result)
		results = append(results, result)
	}

	duration := time.Since(start)
	r.results = results
	r.stats = stats
	metrics.RecordReport(r.runID, stats, duration)

	if err := r.fileLogger.Complete(); err != nil {
		r.config.Log.Error("Failed to write summary file", "error", err)
	}
	if err := r.formatter.FormatResults(results, stats, duration); err != nil {
		r.config.Log.Error("Failed to render results table", "error", err)
	}

	r.config.Log.Info("Report complete",
		"run_id", r.runID,
		"stats", stats.String(),
		"duration", duration)
	return nil
}

// RunID returns the identifier of this report run.
func (r *Reporter) RunID() string {
	return r.runID
}

// Results returns the per-group results of the last Run.
func (r *Reporter) Results() []types.GroupResult {
	return r.results
}

// Stats returns the aggregated counts of the last Run.
func (r *Reporter) Stats() types.RunStats {
	return r.stats
}
