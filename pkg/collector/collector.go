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
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/NVIDIA/envmod/pkg/config"
	"github.com/NVIDIA/envmod/pkg/probe"
	"github.com/NVIDIA/envmod/pkg/setting"
	"github.com/NVIDIA/envmod/pkg/version"
)

// missingSuffix marks an absent auxiliary file in report output. Absence is
// made visible instead of being hidden or raised as an error.
const missingSuffix = " -> <empty>"

// SiteIdentifier classifies the site customization package.
// *sitepkg.Identifier is the production implementation.
type SiteIdentifier interface {
	Identify(ctx context.Context) (string, error)
}

// Collector assembles the canonical configuration snapshot for this host.
// The snapshot is built lazily on first access and memoized for the process
// lifetime: every underlying probe runs exactly once. Construction is
// guarded by sync.Once so concurrent first callers are safe.
type Collector struct {
	Settings   *config.Settings
	Identifier SiteIdentifier
	FS         probe.FS
	Runner     probe.Runner

	// Version is the tool version string reported in the snapshot.
	Version string

	once sync.Once
	snap setting.Snapshot
	err  error
}

// Snapshot returns the canonical attribute table, building it on first call.
// The only possible error is an unresolvable hashing tool, which is memoized
// like the snapshot itself: retrying cannot succeed within one process.
func (c *Collector) Snapshot(ctx context.Context) (setting.Snapshot, error) {
	c.once.Do(func() {
		start := time.Now()
		c.snap, c.err = c.collect(ctx)

		status := "success"
		if c.err != nil {
			status = "error"
		}
		snapshotBuildTotal.WithLabelValues(status).Inc()
		snapshotBuildDuration.Observe(time.Since(start).Seconds())
	})
	return c.snap, c.err
}

func (c *Collector) collect(ctx context.Context) (setting.Snapshot, error) {
	slog.Debug("building configuration snapshot")

	s := c.Settings
	snap := setting.Snapshot{
		"autohandling":        attr("Automated module handling", setting.Bool(s.AutoHandling)),
		"availindepth":        attr("In-depth availability search", setting.Bool(s.AvailIndepth)),
		"collpinversion":      attr("Pin versions in collections", setting.Bool(s.CollectionPinVersion)),
		"colltarget":          attr("Collection target", setting.Str(s.CollectionTarget)),
		"color":               attr("Colored output", setting.Str(s.Color)),
		"contact":             attr("Contact address", setting.Str(s.Contact)),
		"editor":              attr("Modulefile editor", setting.Str(s.Editor)),
		"extdflt":             attr("Extended default versions", setting.Bool(s.ExtendedDefault)),
		"home":                attr("Modules home directory", setting.Str(s.Home)),
		"icase":               attr("Case-insensitive matching", setting.Str(s.ICase)),
		"ignoreddirs":         attr("Ignored directories", setting.Str(s.IgnoredDirs)),
		"impldflt":            attr("Implicit default version", setting.Bool(s.ImplicitDefault)),
		"implreq":             attr("Implicit requirement handling", setting.Bool(s.ImplicitRequirement)),
		"lockedconfs":         attr("Locked configuration options", setting.Str(s.LockedConfigs)),
		"nearlyforbiddendays": attr("Nearly forbidden advance days", setting.Int(s.NearlyForbiddenDays)),
		"pager":               attr("Output pager", setting.Str(s.Pager)),
		"quarantine":          attr("Quarantine support", setting.Bool(s.QuarantineSupport)),
		"searchmatch":         attr("Search match style", setting.Str(s.SearchMatch)),
		"shellstartup":        attr("Shell startup setup", setting.Bool(s.SetShellStartup)),
		"termbg":              attr("Terminal background", setting.Str(s.TermBackground)),
		"unloadmatchorder":    attr("Unload match order", setting.Str(s.UnloadMatchOrder)),
		"verbosity":           attr("Message verbosity", setting.Str(s.Verbosity)),
		"cachebuffer":         attr("Cache I/O buffer bytes", setting.Int(s.CacheBufferBytes)),
		"cacheexpiry":         attr("Cache expiry seconds", setting.Int(s.CacheExpirySecs)),
		"mcookiecheck":        attr("Magic cookie version check", setting.Bool(s.MCookieVersionCheck)),
	}

	snap["uname"] = attr("Host identification", setting.Str(c.hostID(ctx)))
	snap["version"] = attr("Tool version", setting.Str(c.toolVersion()))
	snap["rcfile"] = attr("Global RC file", setting.Str(c.auxFile("rcfile", s.RcFile)))
	snap["adminfile"] = attr("Administration file", setting.Str(c.auxFile("adminfile", s.AdminFile)))

	siteClass, err := c.siteConfig(ctx)
	if err != nil {
		// Fatal: no hashing utility means no report at all.
		return nil, err
	}
	snap["siteconfig"] = attr("Site customization package", setting.Str(siteClass))

	slog.Debug("configuration snapshot built", "attributes", len(snap))
	return snap, nil
}

// hostID runs the host identification command and returns its trimmed
// output verbatim. Failures are logged but never fatal: whatever stdout was
// captured is what gets reported.
func (c *Collector) hostID(ctx context.Context) string {
	probeTotal.WithLabelValues("uname").Inc()

	out, err := c.Runner.Run(ctx, "uname", "-a")
	if err != nil {
		slog.Warn("host identification command failed", "error", err)
	}
	return strings.TrimSpace(out)
}

// toolVersion reports the tool version string, logging a diagnostic when it
// does not parse as a version number. The original string is reported
// either way.
func (c *Collector) toolVersion() string {
	if _, err := version.ParseVersion(c.Version); err != nil {
		slog.Debug("tool version is not a semantic version", "version", c.Version, "error", err)
	}
	return c.Version
}

// auxFile checks an auxiliary file and returns its configured path, with a
// visible placeholder suffix when the file is absent or unreadable.
func (c *Collector) auxFile(name, path string) string {
	probeTotal.WithLabelValues(name).Inc()

	if c.FS.Readable(path) {
		return path
	}
	slog.Debug("auxiliary file not readable", "probe", name, "path", path)
	return path + missingSuffix
}

func (c *Collector) siteConfig(ctx context.Context) (string, error) {
	probeTotal.WithLabelValues("siteconfig").Inc()
	return c.Identifier.Identify(ctx)
}

func attr(label string, value setting.Reading) setting.Attribute {
	return setting.Attribute{Label: label, Value: value}
}
