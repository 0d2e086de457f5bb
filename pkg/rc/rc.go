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

package rc

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// CacheDescriptor pairs a module cache directory with the file whose
// modification time marks the cache's freshness.
type CacheDescriptor struct {
	Directory     string `yaml:"directory" json:"directory"`
	TimestampFile string `yaml:"timestamp_file" json:"timestamp_file"`
}

// PropertyTable is an opaque nested mapping declared by rc files. envmod
// never inspects its structure; it is carried through to report output
// verbatim.
type PropertyTable map[string]any

// ActiveConfig is the aggregate state declared by the currently active rc
// files. RcFiles and Caches are order-significant: both preserve the order
// in which files were consulted and entries were declared.
type ActiveConfig struct {
	RcFiles    []string
	Caches     []CacheDescriptor
	Properties PropertyTable
}

// rcDocument is the subset of an rc file this package understands. Unknown
// keys are ignored; the properties subtree stays opaque.
type rcDocument struct {
	CacheDirs  []CacheDescriptor `yaml:"cachedirs"`
	Properties PropertyTable     `yaml:"properties"`
}

// Load reads every existing file from candidates, in order, and merges their
// declarations. Missing candidates are skipped silently; a file that exists
// but cannot be parsed is an error. Cache descriptors accumulate across
// files in declaration order; property tables merge shallowly with later
// files overriding earlier keys.
func Load(candidates []string) (*ActiveConfig, error) {
	ac := &ActiveConfig{}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				slog.Debug("rc file not present, skipping", "path", path)
				continue
			}
			return nil, fmt.Errorf("failed to read rc file %q: %w", path, err)
		}

		var doc rcDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse rc file %q: %w", path, err)
		}

		ac.RcFiles = append(ac.RcFiles, path)
		ac.Caches = append(ac.Caches, doc.CacheDirs...)

		if len(doc.Properties) > 0 {
			if ac.Properties == nil {
				ac.Properties = make(PropertyTable, len(doc.Properties))
			}
			for k, v := range doc.Properties {
				ac.Properties[k] = v
			}
		}

		slog.Debug("loaded rc file",
			"path", path,
			"cachedirs", len(doc.CacheDirs),
			"properties", len(doc.Properties))
	}

	return ac, nil
}
