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

// Package rc loads run-command (rc) file state: the ordered list of active
// rc files, the module cache descriptors they declare, and an opaque
// property table.
//
// An rc file is YAML:
//
//	cachedirs:
//	  - directory: /opt/modulefiles
//	    timestamp_file: /opt/modulefiles/.timestamp
//	properties:
//	  arch:
//	    gpu: [cuda, rocm]
//
// Ordering is significant everywhere: rc files are consulted in candidate
// order and cache descriptors keep declaration order, because report output
// must present both sequences unsorted.
package rc
