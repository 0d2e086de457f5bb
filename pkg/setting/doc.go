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

// Package setting defines the configuration snapshot data model.
//
// A Snapshot maps short mnemonic keys (e.g. "autohandling", "home",
// "siteconfig") to Attribute values. Each Attribute carries a display label
// and a typed scalar Reading. Readings serialize to bare JSON/YAML scalars so
// that structured report output contains plain values rather than wrapper
// objects.
//
// Example:
//
//	snap := setting.Snapshot{
//	    "autohandling": {Label: "Automated module handling", Value: setting.Bool(true)},
//	    "home":         {Label: "Modules home directory", Value: setting.Str("/usr/share/modules")},
//	}
//	for _, k := range snap.Keys() {
//	    fmt.Printf("%s=%s\n", k, snap[k].Value)
//	}
package setting
