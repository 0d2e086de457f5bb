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

package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NVIDIA/envmod/pkg/rc"
	"github.com/NVIDIA/envmod/pkg/setting"
)

const (
	bannerWidth = 60
	bannerTitle = "Properties"

	propertyIndent = "  "
)

// formatText renders the full diagnostic report as human-readable text:
// the configuration table, the active rc file list, the cache directory
// table, and the property table dump. Blocks with no data are omitted;
// present blocks are separated by a blank line.
func formatText(snap setting.Snapshot, active *rc.ActiveConfig) string {
	var blocks []string

	cfg := newTable("Description", "Value")
	for _, key := range snap.Keys() {
		a := snap[key]
		cfg.addRow(a.Label, a.Value.String())
	}
	if !cfg.empty() {
		blocks = append(blocks, cfg.render())
	}

	if active != nil && len(active.RcFiles) > 0 {
		var b strings.Builder
		b.WriteString("Active RC file(s):\n")
		for _, f := range active.RcFiles {
			b.WriteString(f)
			b.WriteByte('\n')
		}
		blocks = append(blocks, b.String())
	}

	if active != nil && len(active.Caches) > 0 {
		caches := newTable("Cache Directory", "Time Stamp File")
		for _, c := range active.Caches {
			caches.addRow(c.Directory, c.TimestampFile)
		}
		blocks = append(blocks, caches.render())
	}

	if active != nil && len(active.Properties) > 0 {
		var b strings.Builder
		border := strings.Repeat("-", bannerWidth)
		b.WriteString(border)
		b.WriteByte('\n')
		b.WriteString(bannerTitle)
		b.WriteByte('\n')
		b.WriteString(border)
		b.WriteByte('\n')
		writeProperties(&b, map[string]any(active.Properties), 0)
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n")
}

// writeProperties dumps an opaque property mapping deterministically: keys
// sorted at each level, nested mappings indented one level deeper. Leaf
// values are rendered with their default formatting; their structure is
// never interpreted.
func writeProperties(b *strings.Builder, props map[string]any, depth int) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	indent := strings.Repeat(propertyIndent, depth)
	for _, k := range keys {
		switch v := props[k].(type) {
		case map[string]any:
			fmt.Fprintf(b, "%s%s:\n", indent, k)
			writeProperties(b, v, depth+1)
		case rc.PropertyTable:
			fmt.Fprintf(b, "%s%s:\n", indent, k)
			writeProperties(b, map[string]any(v), depth+1)
		default:
			fmt.Fprintf(b, "%s%s: %v\n", indent, k, v)
		}
	}
}
