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

	"github.com/NVIDIA/envmod/pkg/collector"
	"github.com/NVIDIA/envmod/pkg/rc"
	"github.com/NVIDIA/envmod/pkg/setting"
)

// Builder ties the configuration collector and the active rc state together
// into rendered reports. The collector memoizes its snapshot, so a single
// Builder can serve repeated report calls at the cost of one collection.
type Builder struct {
	Collector *collector.Collector
	Active    *rc.ActiveConfig
}

// Report renders the human-readable text report.
// A snapshot failure yields an empty string and the error; no partial
// report is ever produced.
func (b *Builder) Report(ctx context.Context) (string, error) {
	snap, err := b.snapshot(ctx)
	if err != nil {
		return "", err
	}
	return formatText(snap, b.Active), nil
}

// ReportJSON renders the structured JSON report.
func (b *Builder) ReportJSON(ctx context.Context) ([]byte, error) {
	snap, err := b.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return formatJSON(snap, b.Active)
}

// ReportYAML renders the structured report as YAML. It carries the same
// fields as the JSON report.
func (b *Builder) ReportYAML(ctx context.Context) ([]byte, error) {
	snap, err := b.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return formatYAML(snap, b.Active)
}

func (b *Builder) snapshot(ctx context.Context) (setting.Snapshot, error) {
	return b.Collector.Snapshot(ctx)
}
