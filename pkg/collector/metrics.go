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

package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotBuildTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envmod_snapshot_build_total",
			Help: "Total number of configuration snapshot builds by status.",
		},
		[]string{"status"},
	)

	snapshotBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "envmod_snapshot_build_duration_seconds",
			Help:    "Time taken to build the configuration snapshot.",
			Buckets: prometheus.DefBuckets,
		},
	)

	probeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envmod_probe_total",
			Help: "Total number of host probes executed by probe name.",
		},
		[]string{"probe"},
	)
)
