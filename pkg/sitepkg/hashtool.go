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

package sitepkg

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/envmod/pkg/errors"
	"github.com/NVIDIA/envmod/pkg/probe"
)

// Family classifies a hashing algorithm, determining which known-good
// reference digest applies during comparison.
type Family string

const (
	FamilyMD5  Family = "md5"
	FamilySHA1 Family = "sha1"
)

// hashToolCandidates is the fixed probe order used when no explicit tool is
// configured. sha1-family tools are preferred over md5-family ones.
var hashToolCandidates = []string{
	"sha1sum",
	"shasum",
	"sha1",
	"md5sum",
	"md5",
}

// HashTool is a resolved hashing executable together with its digest family.
type HashTool struct {
	Path   string
	Family Family
}

// familyOf derives the digest family from a tool's base name. Anything not
// recognizably md5 falls into the sha1 family, matching the candidate order.
func familyOf(tool string) Family {
	if strings.Contains(filepath.Base(tool), "md5") {
		return FamilyMD5
	}
	return FamilySHA1
}

// resolveHashTool picks the hashing executable to use. An explicitly
// configured path always wins and is trusted as-is; otherwise the candidate
// list is probed in order and the first tool present on the system is taken.
// No candidate found is fatal: report construction cannot proceed.
func resolveHashTool(runner probe.Runner, explicit string) (HashTool, error) {
	if explicit != "" {
		return HashTool{Path: explicit, Family: familyOf(explicit)}, nil
	}

	for _, cand := range hashToolCandidates {
		path, err := runner.LookPath(cand)
		if err != nil {
			continue
		}
		slog.Debug("hash tool resolved", "tool", path, "family", familyOf(cand))
		return HashTool{Path: path, Family: familyOf(cand)}, nil
	}

	return HashTool{}, errors.NewWithContext(
		errors.ErrCodeHashSumUnavailable,
		"no hashing utility found on this system",
		map[string]any{"candidates": hashToolCandidates},
	)
}

// extractDigest isolates the hex digest token from hashing tool output.
// Two shapes are handled:
//
//	BSD: MD5 (path) = 0123abcd...
//	GNU: 0123abcd...  path
//
// The extraction is deliberately lenient: unparsable output yields whatever
// token remains and the comparison simply fails downstream.
func extractDigest(out string) string {
	line := out
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	// BSD shape: everything after the last "= " is the digest.
	if idx := strings.LastIndex(line, "= "); idx >= 0 {
		return strings.TrimSpace(line[idx+2:])
	}

	// GNU shape: the digest is the first field, the filename trails.
	return strings.Fields(line)[0]
}
