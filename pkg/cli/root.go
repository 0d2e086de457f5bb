/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/envmod/pkg/logging"
)

const (
	name           = "modctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "output format: text, json, yaml",
		Sources: cli.EnvVars("MODULES_FORMAT"),
		Value:   "text",
	}

	settingsFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "settings file path (default: built-in defaults plus MODULES_* environment)",
		Sources: cli.EnvVars("MODULES_CONFIG"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("MODULES_LOG_LEVEL"),
		Value:   "warn",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "environment-module configuration diagnostics",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `modctl inspects how the environment-module tool is configured on this
host and reports the effective state: resolved option values, active rc
files, module cache directories, declared properties, and whether the
site customization package is stock or locally modified.`,
		Flags: []cli.Flag{
			settingsFlag,
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"run_id", uuid.NewString())
			return ctx, nil
		},
		Commands: []*cli.Command{
			configCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main and owns signal handling:
// SIGINT/SIGTERM cancel the command context so in-flight host probes stop.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
