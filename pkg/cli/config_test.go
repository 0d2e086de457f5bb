/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/envmod/pkg/config"
	"github.com/NVIDIA/envmod/pkg/serializer"
)

func TestFormatFlagValidation(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "text", format: "text"},
		{name: "json", format: "json"},
		{name: "yaml", format: "yaml"},
		{name: "xml rejected", format: "xml", wantErr: true},
		{name: "empty rejected", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: tt.format},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got := serializer.Format(c.String("format"))
					if got.IsUnknown() != tt.wantErr {
						t.Errorf("Format(%q).IsUnknown() = %v, wantErr %v",
							tt.format, got.IsUnknown(), tt.wantErr)
					}
					return nil
				},
			}
			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestRcCandidates(t *testing.T) {
	cfg := config.Default()

	t.Run("explicit flags win", func(t *testing.T) {
		got := rcCandidates([]string{"/tmp/a", "/tmp/b"}, cfg)
		if len(got) != 2 || got[0] != "/tmp/a" || got[1] != "/tmp/b" {
			t.Errorf("rcCandidates = %v, want explicit list", got)
		}
	})

	t.Run("defaults start with global rc", func(t *testing.T) {
		got := rcCandidates(nil, cfg)
		if len(got) == 0 || got[0] != cfg.RcFile {
			t.Errorf("rcCandidates = %v, want %q first", got, cfg.RcFile)
		}
		if len(got) > 1 && !strings.HasSuffix(got[1], ".modulerc") {
			t.Errorf("second candidate = %q, want per-user rc", got[1])
		}
	})
}

func TestRootCommandMetadata(t *testing.T) {
	root := rootCmd()
	if root.Name != name {
		t.Errorf("root name = %q, want %q", root.Name, name)
	}

	var found bool
	for _, c := range root.Commands {
		if c.Name == "config" {
			found = true
		}
	}
	if !found {
		t.Error("root command missing config subcommand")
	}
}
