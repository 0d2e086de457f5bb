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

package serializer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatIsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{format: FormatText, want: false},
		{format: FormatJSON, want: false},
		{format: FormatYAML, want: false},
		{format: Format("xml"), want: true},
		{format: Format(""), want: true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestSupportedFormats(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("SupportedFormats lists unknown format %q", f)
		}
	}
}

func TestEmitAppendsNewline(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "without newline", data: []byte("report"), want: "report\n"},
		{name: "with newline", data: []byte("report\n"), want: "report\n"},
		{name: "empty", data: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			if err := w.Emit(tt.data); err != nil {
				t.Fatalf("Emit() returned error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Emit(%q) wrote %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	w := NewFileWriterOrStdout(path)
	if err := w.Emit([]byte(`{"config":{}}`)); err != nil {
		t.Fatalf("Emit() returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	// Second close is a no-op.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != "{\"config\":{}}\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestFileWriterEmptyPathFallsBack(t *testing.T) {
	w := NewFileWriterOrStdout("  ")
	if w.closer != nil {
		t.Error("empty path produced a file-backed writer")
	}
}
