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
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/NVIDIA/envmod/pkg/probe"
)

// Classifications returned by Identify. Anything else is the literal
// resolved path of a locally modified (or unverifiable) package.
const (
	ClassStandard = "standard"
	ClassUnknown  = "unknown"
)

// Reference digests of the stock site customization package, keyed by
// digest family.
var defaultReferences = map[Family]string{
	FamilySHA1: "92c221b29da4e01e6b1978fdc8fd25b1b1b2f0e7",
	FamilyMD5:  "c330001c06b5b85e0c26b3c885cd6b4e",
}

// Identifier resolves and classifies the site customization package file.
// The hashing tool is resolved at most once per Identifier, never re-probed
// per call. The zero value is not usable; populate FS and Runner.
type Identifier struct {
	// PackageName is the logical file name looked up along SearchPath.
	PackageName string

	// SearchPath is the ordered directory list scanned for PackageName.
	// The first existing match wins.
	SearchPath []string

	// HashTool optionally pins the hashing executable. When empty, a fixed
	// candidate list is probed instead.
	HashTool string

	// References maps digest families to known-good digests of the stock
	// package. Nil selects the built-in references.
	References map[Family]string

	FS     probe.FS
	Runner probe.Runner

	toolOnce sync.Once
	tool     HashTool
	toolErr  error
}

// Identify locates the package file and classifies it:
//
//   - no file found along the search path: "unknown"
//   - digest matches the known-good reference: "standard"
//   - anything else: the literal resolved path
//
// The only error condition is an unresolvable hashing tool, which aborts
// the caller's report construction entirely.
func (i *Identifier) Identify(ctx context.Context) (string, error) {
	path := i.locate()
	if path == "" {
		slog.Debug("site package not found along search path",
			"package", i.PackageName, "searchpath", i.SearchPath)
		return ClassUnknown, nil
	}

	tool, err := i.resolveTool()
	if err != nil {
		return "", err
	}

	out, runErr := i.Runner.Run(ctx, tool.Path, path)
	if runErr != nil {
		// Best effort: a failing tool may still have emitted a usable
		// digest on stdout, so extraction proceeds regardless.
		slog.Warn("hash tool invocation failed, attempting extraction anyway",
			"tool", tool.Path, "path", path, "error", runErr)
	}

	digest := extractDigest(out)
	ref := i.references()[tool.Family]

	if digest != "" && digest == ref {
		return ClassStandard, nil
	}

	slog.Debug("site package digest mismatch, reporting literal path",
		"path", path, "family", tool.Family, "digest", digest)
	return path, nil
}

// locate returns the first existing match of PackageName along SearchPath,
// or "" when no directory holds the file.
func (i *Identifier) locate() string {
	for _, dir := range i.SearchPath {
		cand := filepath.Join(dir, i.PackageName)
		if i.FS.Exists(cand) {
			return cand
		}
	}
	return ""
}

// resolveTool resolves the hashing tool exactly once per Identifier.
func (i *Identifier) resolveTool() (HashTool, error) {
	i.toolOnce.Do(func() {
		i.tool, i.toolErr = resolveHashTool(i.Runner, i.HashTool)
	})
	return i.tool, i.toolErr
}

func (i *Identifier) references() map[Family]string {
	if i.References != nil {
		return i.References
	}
	return defaultReferences
}
