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

// Package sitepkg classifies the site customization package as stock or
// locally modified.
//
// The package file is located by scanning an ordered search path, then
// hashed with an external tool (explicitly configured, or the first present
// tool from a fixed sha1-then-md5 candidate list). The digest is compared
// case-sensitively against the known-good reference for the tool's digest
// family:
//
//	equal digest      -> "standard"
//	mismatch/garbage  -> the literal resolved path (never an error)
//	file not found    -> "unknown"
//	no hash tool      -> HASH_SUM_UNAVAILABLE (fatal)
//
// Classification is deterministic for identical file content and a fixed
// hashing tool. The tool is resolved once per Identifier and cached.
package sitepkg
