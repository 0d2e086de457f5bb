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

// Package errors provides structured error types for envmod components.
//
// StructuredError carries a stable ErrorCode for programmatic handling, a
// human-readable message, an optional wrapped cause, and optional context:
//
//	err := errors.Wrap(errors.ErrCodeCommandFailed, "uname failed", cause)
//
// Most anomalies during report construction are deliberately non-fatal and
// degrade to placeholder values instead of raising errors. The notable
// exception is ErrCodeHashSumUnavailable: without a hashing utility the site
// customization entry cannot be classified, so report construction aborts
// with no partial output. Callers can detect it through wrapping:
//
//	if errors.IsCode(err, errors.ErrCodeHashSumUnavailable) {
//	    // no md5/sha1 tool on this host
//	}
package errors
