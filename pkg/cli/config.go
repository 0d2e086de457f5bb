/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/envmod/pkg/collector"
	"github.com/NVIDIA/envmod/pkg/config"
	"github.com/NVIDIA/envmod/pkg/defaults"
	"github.com/NVIDIA/envmod/pkg/probe"
	"github.com/NVIDIA/envmod/pkg/rc"
	"github.com/NVIDIA/envmod/pkg/report"
	"github.com/NVIDIA/envmod/pkg/serializer"
	"github.com/NVIDIA/envmod/pkg/sitepkg"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:                  "config",
		EnableShellCompletion: true,
		Usage:                 "Report the effective module tool configuration",
		Description: `Report the effective configuration of the environment-module tool on
this host, including:
  - Resolved option values from defaults, the settings file, and
    MODULES_* environment variables
  - Host identification and tool version
  - Global RC and administration file availability
  - Site customization package classification (standard, locally
    modified, or absent)
  - Active rc files, module cache directories, and declared properties

The report can be output in text, JSON, or YAML format.

# Examples

Human-readable report on stdout:
  modctl config

Structured report written to a file:
  modctl config --format json --output config.json

Consult specific rc files instead of the defaults:
  modctl config --rcfile /etc/environment-modules/rc --rcfile ~/.modulerc

Dump the raw effective settings, including values the report does not
surface (site search path, pinned hash tool):
  modctl config --dump`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "rcfile",
				Usage: "rc file to consult (can be repeated; default: global rc then ~/.modulerc)",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "dump the raw effective settings instead of the report",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.CLIReportTimeout)
			defer cancel()

			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			if cmd.Bool("dump") {
				return emitSettings(cfg, outFormat, cmd.String("output"))
			}

			active, err := rc.Load(rcCandidates(cmd.StringSlice("rcfile"), cfg))
			if err != nil {
				return err
			}

			b := &report.Builder{
				Collector: &collector.Collector{
					Settings: cfg,
					Identifier: &sitepkg.Identifier{
						PackageName: cfg.SiteConfig,
						SearchPath:  cfg.SiteSearchPath,
						HashTool:    cfg.HashTool,
						FS:          probe.OSFS{},
						Runner:      probe.ExecRunner{},
					},
					FS:      probe.OSFS{},
					Runner:  probe.ExecRunner{},
					Version: version,
				},
				Active: active,
			}

			var data []byte
			switch outFormat {
			case serializer.FormatJSON:
				data, err = b.ReportJSON(ctx)
			case serializer.FormatYAML:
				data, err = b.ReportYAML(ctx)
			default:
				var text string
				text, err = b.Report(ctx)
				data = []byte(text)
			}
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(cmd.String("output"))
			defer w.Close()
			return w.Emit(data)
		},
	}
}

// emitSettings dumps the raw effective settings, including values the report
// does not surface such as the site search path. Text format falls back to
// YAML since the settings carry no display labels.
func emitSettings(cfg *config.Settings, format serializer.Format, output string) error {
	var (
		data []byte
		err  error
	)
	if format == serializer.FormatJSON {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to render settings: %w", err)
	}

	w := serializer.NewFileWriterOrStdout(output)
	defer w.Close()
	return w.Emit(data)
}

// rcCandidates returns the rc files to consult: explicit flags win, else the
// global rc file followed by the per-user one. Missing candidates are
// skipped at load time.
func rcCandidates(explicit []string, cfg *config.Settings) []string {
	if len(explicit) > 0 {
		return explicit
	}
	candidates := []string{cfg.RcFile}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".modulerc"))
	}
	return candidates
}
