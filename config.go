package reporter

import (
	"fmt"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/asynkron/test262-reporter/flags"
	"github.com/asynkron/test262-reporter/registry"
)

// ManifestFilename is looked up next to the tracking document; when
// present it overrides the project/filter defaults for the repository.
const ManifestFilename = "report.yaml"

// Config holds the application configuration
type Config struct {
	GroupsFile     string // Tracking document listing the groups
	ResultsDir     string // Directory TRX files are written into
	ProjectFile    string // Test project passed to the external runner
	FilterPrefix   string // Fully-qualified name prefix for the filter expression
	RootDir        string // Base directory the external runner executes from
	DotnetBinary   string // Path to the dotnet binary
	LogDir         string // Directory to store per-group runner output
	MetricsEnabled bool   // Serve healthz/metrics for the duration of the run
	MetricsAddr    string // Metrics listening address
	MetricsPort    int    // Metrics listening port
	Log            log.Logger
}

// NewConfig creates a new Config from cli context. All relative paths
// are resolved against the explicit --root-dir value; nothing is ever
// derived from the binary's own location.
func NewConfig(ctx *cli.Context, log log.Logger) (*Config, error) {
	rootDir, err := filepath.Abs(ctx.String(flags.RootDir.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for root directory: %w", err)
	}

	groupsFile := resolvePath(rootDir, ctx.String(flags.GroupsFile.Name))
	resultsDir := resolvePath(rootDir, ctx.String(flags.ResultsDir.Name))
	logDir := resolvePath(rootDir, ctx.String(flags.LogDir.Name))

	projectFile := ctx.String(flags.ProjectFile.Name)
	filterPrefix := ctx.String(flags.FilterPrefix.Name)
	dotnetBinary := ctx.String(flags.DotnetBinary.Name)

	// An optional manifest next to the tracking document supplies
	// per-repository defaults; explicit flags still win.
	manifest, err := registry.LoadManifest(filepath.Join(filepath.Dir(groupsFile), ManifestFilename))
	if err != nil {
		return nil, err
	}
	if !ctx.IsSet(flags.ProjectFile.Name) && manifest.Project != "" {
		projectFile = manifest.Project
	}
	if !ctx.IsSet(flags.FilterPrefix.Name) && manifest.FilterPrefix != "" {
		filterPrefix = manifest.FilterPrefix
	}
	if !ctx.IsSet(flags.DotnetBinary.Name) && manifest.DotnetBinary != "" {
		dotnetBinary = manifest.DotnetBinary
	}

	return &Config{
		GroupsFile:     groupsFile,
		ResultsDir:     resultsDir,
		ProjectFile:    resolvePath(rootDir, projectFile),
		FilterPrefix:   filterPrefix,
		RootDir:        rootDir,
		DotnetBinary:   dotnetBinary,
		LogDir:         logDir,
		MetricsEnabled: ctx.Bool(flags.MetricsEnabled.Name),
		MetricsAddr:    ctx.String(flags.MetricsAddr.Name),
		MetricsPort:    ctx.Int(flags.MetricsPort.Name),
		Log:            log,
	}, nil
}

func resolvePath(rootDir string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}
