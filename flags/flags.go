package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "TEST262_REPORTER"

func prefixEnvVars(name string) []string {
	return []string{fmt.Sprintf("%s_%s", EnvVarPrefix, name)}
}

var (
	GroupsFile = &cli.StringFlag{
		Name:    "groups",
		Value:   "262tests.md",
		EnvVars: prefixEnvVars("GROUPS"),
		Usage:   "Path to the tracking document listing the Test262 groups",
	}
	ResultsDir = &cli.StringFlag{
		Name:    "results-dir",
		Value:   "/tmp/jsengine-results",
		EnvVars: prefixEnvVars("RESULTS_DIR"),
		Usage:   "Directory the external runner writes TRX files into",
	}
	ProjectFile = &cli.StringFlag{
		Name:    "project",
		Value:   "tests/Asynkron.JsEngine.Tests.Test262/Asynkron.JsEngine.Tests.Test262.csproj",
		EnvVars: prefixEnvVars("PROJECT"),
		Usage:   "Test project passed to the external runner",
	}
	FilterPrefix = &cli.StringFlag{
		Name:    "filter-prefix",
		Value:   "Asynkron.JsEngine.Tests.Test262.BuiltInsTests",
		EnvVars: prefixEnvVars("FILTER_PREFIX"),
		Usage:   "Fully-qualified name prefix the group identifier is appended to",
	}
	RootDir = &cli.StringFlag{
		Name:    "root-dir",
		Value:   ".",
		EnvVars: prefixEnvVars("ROOT_DIR"),
		Usage:   "Base directory the external runner executes from; relative paths resolve against it",
	}
	DotnetBinary = &cli.StringFlag{
		Name:    "dotnet-binary",
		Value:   "dotnet",
		EnvVars: prefixEnvVars("DOTNET_BINARY"),
		Usage:   "Path to the dotnet binary used to run the tests",
	}
	LogDir = &cli.StringFlag{
		Name:    "log-dir",
		Value:   "logs",
		EnvVars: prefixEnvVars("LOG_DIR"),
		Usage:   "Directory to store per-group runner output",
	}
	LogLevel = &cli.StringFlag{
		Name:    "log.level",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Usage:   "The lowest log level that will be output",
	}
	LogFormat = &cli.StringFlag{
		Name:    "log.format",
		Value:   "terminal",
		EnvVars: prefixEnvVars("LOG_FORMAT"),
		Usage:   "Format the log output. Supported formats: 'terminal', 'json'",
	}
	MetricsEnabled = &cli.BoolFlag{
		Name:    "metrics.enabled",
		Value:   false,
		EnvVars: prefixEnvVars("METRICS_ENABLED"),
		Usage:   "Enable the healthz and metrics servers for the duration of the run",
	}
	MetricsAddr = &cli.StringFlag{
		Name:    "metrics.addr",
		Value:   "0.0.0.0",
		EnvVars: prefixEnvVars("METRICS_ADDR"),
		Usage:   "Metrics listening address",
	}
	MetricsPort = &cli.IntFlag{
		Name:    "metrics.port",
		Value:   7300,
		EnvVars: prefixEnvVars("METRICS_PORT"),
		Usage:   "Metrics listening port",
	}
)

// Every flag is optional; the defaults reproduce the canonical
// invocation from the engine repository root.
var optionalFlags = []cli.Flag{
	GroupsFile,
	ResultsDir,
	ProjectFile,
	FilterPrefix,
	RootDir,
	DotnetBinary,
	LogDir,
	LogLevel,
	LogFormat,
	MetricsEnabled,
	MetricsAddr,
	MetricsPort,
}

var Flags []cli.Flag

func init() {
	Flags = append(Flags, optionalFlags...)
}
