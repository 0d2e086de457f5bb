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
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/NVIDIA/envmod/pkg/collector"
	"github.com/NVIDIA/envmod/pkg/config"
	"github.com/NVIDIA/envmod/pkg/errors"
	"github.com/NVIDIA/envmod/pkg/rc"
	"github.com/NVIDIA/envmod/pkg/setting"
)

func testSnapshot() setting.Snapshot {
	return setting.Snapshot{
		"verbosity": {Label: "Message verbosity", Value: setting.Str("normal")},
		"color":     {Label: "Colored output", Value: setting.Str("auto")},
		"icase":     {Label: "Case-insensitive matching", Value: setting.Str("search")},
		"extdflt":   {Label: "Extended default versions", Value: setting.Bool(true)},
	}
}

func testActive() *rc.ActiveConfig {
	return &rc.ActiveConfig{
		RcFiles: []string{"/etc/environment-modules/rc", "/home/u/.modulerc"},
		Caches: []rc.CacheDescriptor{
			{Directory: "/var/cache/modules/b", TimestampFile: "/var/cache/modules/b/.ts"},
			{Directory: "/var/cache/modules/a", TimestampFile: "/var/cache/modules/a/.ts"},
		},
		Properties: rc.PropertyTable{
			"zeta":  "last",
			"alpha": map[string]any{"nested": 1, "also": "yes"},
		},
	}
}

func TestFormatTextBlocks(t *testing.T) {
	out := formatText(testSnapshot(), testActive())

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "Description") || !strings.Contains(lines[0], "Value") {
		t.Errorf("first line = %q, want Description/Value header", lines[0])
	}

	// Rows sorted by attribute key: color, extdflt, icase, verbosity.
	wantOrder := []string{"Colored output", "Extended default", "Case-insensitive", "Message verbosity"}
	last := 0
	for _, label := range wantOrder {
		idx := strings.Index(out, label)
		if idx < 0 {
			t.Fatalf("output missing label %q", label)
		}
		if idx < last {
			t.Errorf("label %q out of key order", label)
		}
		last = idx
	}

	if !strings.Contains(out, "Active RC file(s):\n/etc/environment-modules/rc\n/home/u/.modulerc\n") {
		t.Error("rc file list missing or out of order")
	}

	// Cache table keeps declaration order, b before a.
	bIdx := strings.Index(out, "/var/cache/modules/b")
	aIdx := strings.Index(out, "/var/cache/modules/a")
	if bIdx < 0 || aIdx < 0 || bIdx > aIdx {
		t.Errorf("cache rows not in declaration order (b=%d, a=%d)", bIdx, aIdx)
	}
	if !strings.Contains(out, "Cache Directory") || !strings.Contains(out, "Time Stamp File") {
		t.Error("cache table header missing")
	}

	border := strings.Repeat("-", bannerWidth)
	if !strings.Contains(out, border+"\n"+bannerTitle+"\n"+border+"\n") {
		t.Error("property banner missing")
	}

	// Property keys sorted, nested map indented one level.
	alphaIdx := strings.Index(out, "alpha:")
	zetaIdx := strings.Index(out, "zeta: last")
	if alphaIdx < 0 || zetaIdx < 0 || alphaIdx > zetaIdx {
		t.Errorf("property keys not sorted (alpha=%d, zeta=%d)", alphaIdx, zetaIdx)
	}
	if !strings.Contains(out, "\n  also: yes\n  nested: 1\n") {
		t.Error("nested properties not indented and sorted")
	}
}

func TestFormatTextOmitsEmptyBlocks(t *testing.T) {
	out := formatText(testSnapshot(), &rc.ActiveConfig{})

	if strings.Contains(out, "Active RC file(s):") {
		t.Error("rc block rendered with no rc files")
	}
	if strings.Contains(out, "Cache Directory") {
		t.Error("cache block rendered with no descriptors")
	}
	if strings.Contains(out, bannerTitle) {
		t.Error("property banner rendered with no properties")
	}
}

func TestFormatTextAlignment(t *testing.T) {
	snap := setting.Snapshot{
		"a": {Label: "Short", Value: setting.Str("VAL1")},
		"b": {Label: "A considerably longer description", Value: setting.Str("VAL2")},
	}
	out := formatText(snap, nil)

	valueCol := -1
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		var col int
		if strings.HasPrefix(line, "Description") {
			col = strings.Index(line, "Value")
		} else {
			col = strings.Index(line, "VAL")
		}
		if valueCol == -1 {
			valueCol = col
		}
		if col != valueCol {
			t.Fatalf("value column misaligned: line %q starts value at %d, want %d", line, col, valueCol)
		}
	}
}

func TestFormatTextDeterministic(t *testing.T) {
	snap, active := testSnapshot(), testActive()
	first := formatText(snap, active)
	second := formatText(snap, active)
	if first != second {
		t.Error("identical inputs produced different text output")
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "abc", want: 3},
		{in: "", want: 0},
		{in: "设置", want: 4},
		{in: "a设b", want: 4},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.in); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := formatJSON(testSnapshot(), testActive())
	if err != nil {
		t.Fatalf("formatJSON returned error: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, field := range []string{"config", "rcfiles", "cache", "propT"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("JSON missing field %q", field)
		}
	}
	if len(doc) != 4 {
		t.Errorf("JSON has %d top-level fields, want 4", len(doc))
	}

	var cfg map[string]any
	if err := json.Unmarshal(doc["config"], &cfg); err != nil {
		t.Fatalf("config field: %v", err)
	}
	if cfg["verbosity"] != "normal" {
		t.Errorf("config.verbosity = %v, want \"normal\"", cfg["verbosity"])
	}
	if cfg["extdflt"] != true {
		t.Errorf("config.extdflt = %v, want bare boolean true", cfg["extdflt"])
	}

	var cache [][2]string
	if err := json.Unmarshal(doc["cache"], &cache); err != nil {
		t.Fatalf("cache field: %v", err)
	}
	if len(cache) != 2 || cache[0][0] != "/var/cache/modules/b" {
		t.Errorf("cache pairs out of order: %v", cache)
	}
}

func TestFormatJSONOmitsEmptyFields(t *testing.T) {
	out, err := formatJSON(testSnapshot(), &rc.ActiveConfig{})
	if err != nil {
		t.Fatalf("formatJSON returned error: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc) != 1 {
		t.Errorf("JSON has %d fields, want only config: %s", len(doc), out)
	}
	if _, ok := doc["config"]; !ok {
		t.Error("JSON missing config field")
	}
}

func TestValueParityBetweenFormats(t *testing.T) {
	snap := testSnapshot()
	text := formatText(snap, nil)

	out, err := formatJSON(snap, nil)
	if err != nil {
		t.Fatalf("formatJSON returned error: %v", err)
	}
	var doc struct {
		Config map[string]any `json:"config"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for key := range snap {
		rendered := snap[key].Value.String()
		if !strings.Contains(text, rendered) {
			t.Errorf("text report missing value %q for %q", rendered, key)
		}
	}
	if doc.Config["color"] != snap["color"].Value.Any() {
		t.Errorf("JSON config.color = %v, text value = %v", doc.Config["color"], snap["color"].Value.Any())
	}
}

type stubIdentifier struct {
	result string
	err    error
}

func (s stubIdentifier) Identify(context.Context) (string, error) { return s.result, s.err }

type stubFS struct{}

func (stubFS) Exists(string) bool   { return true }
func (stubFS) Readable(string) bool { return true }

type stubRunner struct{}

func (stubRunner) Run(context.Context, string, ...string) (string, error) {
	return "Linux test 6.1.0\n", nil
}
func (stubRunner) LookPath(name string) (string, error) { return "/usr/bin/" + name, nil }

func TestBuilderFatalErrorNoPartialOutput(t *testing.T) {
	c := &collector.Collector{
		Settings: config.Default(),
		Identifier: stubIdentifier{
			err: errors.New(errors.ErrCodeHashSumUnavailable, "no hashing utility found"),
		},
		FS:      stubFS{},
		Runner:  stubRunner{},
		Version: "5.6.1",
	}
	b := &Builder{Collector: c, Active: testActive()}

	text, err := b.Report(context.Background())
	if err == nil {
		t.Fatal("Report() returned nil error")
	}
	if text != "" {
		t.Errorf("Report() produced partial output on fatal error: %q", text)
	}

	data, err := b.ReportJSON(context.Background())
	if err == nil {
		t.Fatal("ReportJSON() returned nil error")
	}
	if data != nil {
		t.Errorf("ReportJSON() produced partial output on fatal error: %s", data)
	}
	if !errors.IsCode(err, errors.ErrCodeHashSumUnavailable) {
		t.Errorf("error code = %v, want %s", err, errors.ErrCodeHashSumUnavailable)
	}
}

func TestBuilderReports(t *testing.T) {
	c := &collector.Collector{
		Settings:   config.Default(),
		Identifier: stubIdentifier{result: "standard"},
		FS:         stubFS{},
		Runner:     stubRunner{},
		Version:    "5.6.1",
	}
	b := &Builder{Collector: c, Active: testActive()}
	ctx := context.Background()

	text, err := b.Report(ctx)
	if err != nil {
		t.Fatalf("Report() returned error: %v", err)
	}
	if !strings.Contains(text, "Site customization package") || !strings.Contains(text, "standard") {
		t.Error("text report missing site package classification")
	}

	data, err := b.ReportJSON(ctx)
	if err != nil {
		t.Fatalf("ReportJSON() returned error: %v", err)
	}
	if !json.Valid(data) {
		t.Error("ReportJSON() output is not valid JSON")
	}

	ydata, err := b.ReportYAML(ctx)
	if err != nil {
		t.Fatalf("ReportYAML() returned error: %v", err)
	}
	if !strings.Contains(string(ydata), "config:") {
		t.Error("ReportYAML() output missing config field")
	}
}
