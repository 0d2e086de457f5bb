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

package setting

import "sort"

// Attribute pairs a human-readable label with the effective value of one
// configuration setting. The label appears only in text output; structured
// output carries the value alone.
type Attribute struct {
	Label string  `json:"label" yaml:"label"`
	Value Reading `json:"value" yaml:"value"`
}

// Snapshot is the canonical configuration attribute table, keyed by short
// mnemonic identifier. Insertion order carries no meaning; callers that need
// a stable order sort by key via Keys.
//
// A Snapshot is built once per process and treated as read-only afterwards.
type Snapshot map[string]Attribute

// Keys returns the snapshot keys sorted lexically.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the flat key to value mapping with labels dropped.
// This is the shape encoded under the "config" field of the JSON report.
func (s Snapshot) Values() map[string]Reading {
	vals := make(map[string]Reading, len(s))
	for k, a := range s {
		vals[k] = a.Value
	}
	return vals
}

// Clone returns a shallow copy of the snapshot. Readings are immutable
// scalars so a shallow copy is sufficient.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, a := range s {
		out[k] = a
	}
	return out
}
