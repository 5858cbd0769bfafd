// Package logging handles writing per-run artifacts to disk: the raw
// output of each group's external runner invocation and a copy of the
// summary lines printed to stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/acarl005/stripansi"
)

const (
	RunDirectoryPrefix = "testrun-" // Standardized prefix for run directories
	SummaryFilename    = "summary.txt"
)

// FileLogger writes the artifacts of one report run under
// <baseDir>/testrun-<runID>/. The external runner's console output is
// suppressed from the terminal but preserved here, ANSI-stripped, one
// file per group.
type FileLogger struct {
	baseDir string
	runID   string
	runDir  string
	summary []string
}

// NewFileLogger creates the run directory and returns a logger bound
// to it.
func NewFileLogger(baseDir string, runID string) (*FileLogger, error) {
	runDir := filepath.Join(baseDir, RunDirectoryPrefix+runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory %s: %w", runDir, err)
	}
	return &FileLogger{
		baseDir: baseDir,
		runID:   runID,
		runDir:  runDir,
	}, nil
}

// RunDir returns the directory artifacts are written to.
func (l *FileLogger) RunDir() string {
	return l.runDir
}

// RunID returns the run identifier the logger was created with.
func (l *FileLogger) RunID() string {
	return l.runID
}

// LogGroupOutput stores the captured runner output for one group.
// ANSI escape sequences are stripped so the files are greppable.
func (l *FileLogger) LogGroupOutput(group string, output []byte) error {
	clean := stripansi.Strip(string(output))
	path := filepath.Join(l.runDir, group+".log")
	if err := os.WriteFile(path, []byte(clean), 0644); err != nil {
		return fmt.Errorf("failed to write group log %s: %w", path, err)
	}
	return nil
}

// LogSummary records one report line for the summary file.
func (l *FileLogger) LogSummary(line string) {
	l.summary = append(l.summary, line)
}

// Complete writes the collected summary lines. Called once, after the
// last group has been reported.
func (l *FileLogger) Complete() error {
	path := filepath.Join(l.runDir, SummaryFilename)
	content := strings.Join(l.summary, "\n")
	if len(l.summary) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write summary file %s: %w", path, err)
	}
	return nil
}
