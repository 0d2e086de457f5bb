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
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/envmod/pkg/rc"
	"github.com/NVIDIA/envmod/pkg/setting"
)

// document is the structured report shape shared by the JSON and YAML
// renderings. Every field is optional: a field appears only when the
// underlying data exists.
type document struct {
	Config  map[string]setting.Reading `json:"config,omitempty" yaml:"config,omitempty"`
	RcFiles []string                   `json:"rcfiles,omitempty" yaml:"rcfiles,omitempty"`
	Cache   [][2]string                `json:"cache,omitempty" yaml:"cache,omitempty"`
	PropT   rc.PropertyTable           `json:"propT,omitempty" yaml:"propT,omitempty"`
}

// newDocument assembles the structured report document. Config values are
// the same typed scalars the text report renders; rc files and cache pairs
// keep their original order.
func newDocument(snap setting.Snapshot, active *rc.ActiveConfig) document {
	doc := document{}
	if len(snap) > 0 {
		doc.Config = snap.Values()
	}
	if active != nil {
		doc.RcFiles = active.RcFiles
		for _, c := range active.Caches {
			doc.Cache = append(doc.Cache, [2]string{c.Directory, c.TimestampFile})
		}
		doc.PropT = active.Properties
	}
	return doc
}

func formatJSON(snap setting.Snapshot, active *rc.ActiveConfig) ([]byte, error) {
	return json.MarshalIndent(newDocument(snap, active), "", "  ")
}

func formatYAML(snap setting.Snapshot, active *rc.ActiveConfig) ([]byte, error) {
	return yaml.Marshal(newDocument(snap, active))
}
