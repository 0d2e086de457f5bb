// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package probe

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/NVIDIA/envmod/pkg/defaults"
)

// Runner abstracts external process invocation. Calls block until the
// process exits; callers that need a deadline pass it through ctx.
type Runner interface {
	// Run executes name with args and returns the captured standard output
	// as text. Standard output captured before a non-zero exit is returned
	// alongside the error so callers can attempt best-effort extraction.
	Run(ctx context.Context, name string, args ...string) (string, error)

	// LookPath searches for an executable in the system PATH and returns
	// its resolved path.
	LookPath(name string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// Run executes the command and captures stdout. Stderr is discarded; a
// failing command is reported through the returned error while any partial
// stdout is still handed back. When ctx carries no deadline the default
// probe timeout applies so a wedged command cannot hang the report.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaults.ProbeTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var out bytes.Buffer
	cmd.Stdout = &out

	err := cmd.Run()
	if err != nil {
		slog.Debug("external command failed",
			"command", name,
			"args", strings.Join(args, " "),
			"error", err)
	}

	return out.String(), err
}

// LookPath resolves name against the system PATH.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
