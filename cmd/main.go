package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/urfave/cli/v2"

	reporter "github.com/asynkron/test262-reporter"
	"github.com/asynkron/test262-reporter/exitcodes"
	"github.com/asynkron/test262-reporter/flags"
	"github.com/asynkron/test262-reporter/service"
)

var (
	Version   = "v0.2.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "test262-reporter"
	app.Usage = "Test262 group report generator"
	app.Description = "test262-reporter runs each tracked Test262 group through the external test runner and prints a pass/total summary line per group"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		if err == nil {
			return
		}
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if reporter.IsNoGroupsError(err) {
			// An empty tracking document is a usage error, not a crash
			cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.NoGroups))
		} else if reporter.IsRuntimeError(err) {
			cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
		} else {
			cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
		}
	}

	// Start telemetry
	shutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(app.Name),
		otelconfig.WithServiceVersion(app.Version),
	)
	if err != nil {
		log.Crit("Failed to setup open telemetry", "message", err)
	}
	defer shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func run(ctx *cli.Context) error {
	logger, err := newLogger(ctx)
	if err != nil {
		return reporter.NewRuntimeError(fmt.Errorf("failed to set up logging: %w", err))
	}
	log.SetDefault(logger)

	cfg, err := reporter.NewConfig(ctx, logger)
	if err != nil {
		return reporter.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	logger.Debug("Config",
		"groupsFile", cfg.GroupsFile,
		"resultsDir", cfg.ResultsDir,
		"project", cfg.ProjectFile)

	if cfg.MetricsEnabled {
		svc := service.New(service.Config{
			MetricsAddr: cfg.MetricsAddr,
			MetricsPort: cfg.MetricsPort,
		})
		svc.Start(ctx.Context)
		defer svc.Shutdown()
	}

	r, err := reporter.New(cfg, Version)
	if err != nil {
		return reporter.NewRuntimeError(fmt.Errorf("failed to create reporter: %w", err))
	}

	return r.Run(ctx.Context)
}

func newLogger(ctx *cli.Context) (log.Logger, error) {
	lvl, err := log.LvlFromString(ctx.String(flags.LogLevel.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var handler slog.Handler
	switch ctx.String(flags.LogFormat.Name) {
	case "json":
		handler = log.JSONHandlerWithLevel(os.Stderr, lvl)
	case "terminal":
		handler = log.NewTerminalHandlerWithLevel(os.Stderr, lvl, false)
	default:
		return nil, fmt.Errorf("unknown log format: %s", ctx.String(flags.LogFormat.Name))
	}
	return log.NewLogger(handler), nil
}
