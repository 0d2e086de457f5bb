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

// Package serializer delivers rendered report output to its destination.
//
// The report packages produce fully rendered bytes; this package only
// selects the destination (a file path or stdout) and guarantees the output
// ends with a newline. Close must be called on file-backed writers to
// release the handle; calling Close on a stdout writer is a no-op.
package serializer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the report rendering.
type Format string

const (
	// FormatText is the human-readable aligned-table report.
	FormatText Format = "text"
	// FormatJSON is the structured JSON report.
	FormatJSON Format = "json"
	// FormatYAML is the structured YAML report.
	FormatYAML Format = "yaml"
)

func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported report formats.
func SupportedFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// Writer delivers rendered report bytes to a file or stdout.
// Close must be called to release file handles when using
// NewFileWriterOrStdout.
type Writer struct {
	output io.Writer
	closer io.Closer
}

// NewWriter creates a Writer on the given destination.
// If output is nil, os.Stdout is used.
func NewWriter(output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{output: output}
}

// NewFileWriterOrStdout creates a Writer on the given file path.
// If path is empty or the file cannot be created, it falls back to stdout.
// Remember to call Close on the returned Writer.
func NewFileWriterOrStdout(path string) *Writer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewWriter(nil)
	}

	file, err := os.Create(trimmed)
	if err != nil {
		slog.Error("failed to create output file, falling back to stdout",
			"error", err, "path", trimmed)
		return NewWriter(nil)
	}

	return &Writer{output: file, closer: file}
}

// Emit writes the rendered report, appending a trailing newline when the
// payload does not already carry one.
func (w *Writer) Emit(data []byte) error {
	if _, err := w.output.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		if _, err := io.WriteString(w.output, "\n"); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// Close releases any resources associated with the Writer.
// It is safe to call Close multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		err := w.closer.Close()
		w.closer = nil
		return err
	}
	return nil
}
