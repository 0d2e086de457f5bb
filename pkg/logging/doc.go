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

// Package logging provides structured logging utilities for envmod components.
//
// It wraps the standard library slog package with project defaults: JSON
// records to stderr, module/version context on every record, source location
// at debug level, and LOG_LEVEL environment configuration.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("modctl", version)
//
//	    slog.Info("building configuration report", "format", "json")
//	    slog.Debug("hash tool resolved", "tool", "/usr/bin/sha1sum")
//	}
//
// Setting an explicit log level, e.g. after flag parsing:
//
//	logging.SetDefaultStructuredLoggerWithLevel("modctl", version, "warn")
//
// Supported levels (case-insensitive): debug, info (default), warn/warning,
// error. The LOG_LEVEL environment variable controls verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug modctl config
package logging
