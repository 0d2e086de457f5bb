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

// Package config loads the effective module-tool settings.
//
// Settings replaces by-name dynamic lookups with a strongly-typed structure:
// every field carries a documented default and enumerated/ranged fields are
// validated once at load time. Sources, in increasing precedence:
//
//  1. Built-in defaults
//  2. Config file (YAML/TOML, optional)
//  3. MODULES_* environment variables
//
// Example:
//
//	settings, err := config.Load("/etc/environment-modules/modctl.yaml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(settings.Pager)
package config
