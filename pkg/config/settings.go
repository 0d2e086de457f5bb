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

package config

import (
	"fmt"
	"slices"

	"github.com/NVIDIA/envmod/pkg/errors"
)

// Settings is the effective configuration of the module tool on this host.
// Every field has a documented default applied when the underlying source
// (config file or environment) does not provide a value. The structure is
// loaded and validated once; collectors treat it as read-only afterwards.
type Settings struct {
	// AutoHandling enables automated module handling (requirement resolution
	// on load, dependent reload on switch). Default: true.
	AutoHandling bool `mapstructure:"auto_handling" yaml:"auto_handling" json:"auto_handling"`

	// AvailIndepth makes avail-style searches descend into module directories.
	// Default: true.
	AvailIndepth bool `mapstructure:"avail_indepth" yaml:"avail_indepth" json:"avail_indepth"`

	// CollectionPinVersion records exact module versions when saving
	// collections. Default: false.
	CollectionPinVersion bool `mapstructure:"collection_pin_version" yaml:"collection_pin_version" json:"collection_pin_version"`

	// CollectionTarget restricts collection operations to a named target.
	// Default: "" (no target).
	CollectionTarget string `mapstructure:"collection_target" yaml:"collection_target" json:"collection_target"`

	// Color controls colored output: always, auto or never. Default: auto.
	Color string `mapstructure:"color" yaml:"color" json:"color"`

	// Contact is the address reported to users on locked or broken modules.
	// Default: root@localhost.
	Contact string `mapstructure:"contact" yaml:"contact" json:"contact"`

	// Editor is the command used to edit modulefiles. Default: vi.
	Editor string `mapstructure:"editor" yaml:"editor" json:"editor"`

	// ExtendedDefault allows partial version specifications to resolve to the
	// latest matching version. Default: true.
	ExtendedDefault bool `mapstructure:"extended_default" yaml:"extended_default" json:"extended_default"`

	// Home is the tool installation directory. Default: /usr/share/modules.
	Home string `mapstructure:"home" yaml:"home" json:"home"`

	// ICase selects case-insensitive matching scope: never, search or always.
	// Default: search.
	ICase string `mapstructure:"icase" yaml:"icase" json:"icase"`

	// IgnoredDirs lists directory names skipped when walking modulepaths.
	// Default: CVS RCS SCCS .svn .git .SYNC .sos.
	IgnoredDirs string `mapstructure:"ignored_dirs" yaml:"ignored_dirs" json:"ignored_dirs"`

	// ImplicitDefault selects a default version when none is declared.
	// Default: true.
	ImplicitDefault bool `mapstructure:"implicit_default" yaml:"implicit_default" json:"implicit_default"`

	// ImplicitRequirement records prereq/conflict constraints expressed by
	// loaded modulefiles. Default: true.
	ImplicitRequirement bool `mapstructure:"implicit_requirement" yaml:"implicit_requirement" json:"implicit_requirement"`

	// LockedConfigs lists configuration option names that cannot be
	// overridden per-user. Default: "" (none).
	LockedConfigs string `mapstructure:"locked_configs" yaml:"locked_configs" json:"locked_configs"`

	// NearlyForbiddenDays is the advance-notice period, in days, before a
	// module becomes forbidden. Default: 14.
	NearlyForbiddenDays int `mapstructure:"nearly_forbidden_days" yaml:"nearly_forbidden_days" json:"nearly_forbidden_days"`

	// Pager is the command output is piped through. Default: less -eFKMqsuR.
	Pager string `mapstructure:"pager" yaml:"pager" json:"pager"`

	// QuarantineSupport enables the environment quarantine mechanism.
	// Default: false.
	QuarantineSupport bool `mapstructure:"quarantine_support" yaml:"quarantine_support" json:"quarantine_support"`

	// RcFile is the global run-command file location.
	// Default: /etc/environment-modules/rc.
	RcFile string `mapstructure:"rcfile" yaml:"rcfile" json:"rcfile"`

	// AdminFile is the forbidden/admin notice file location.
	// Default: /etc/environment-modules/admin.
	AdminFile string `mapstructure:"adminfile" yaml:"adminfile" json:"adminfile"`

	// SearchMatch selects search semantics: starts_with or contains.
	// Default: starts_with.
	SearchMatch string `mapstructure:"search_match" yaml:"search_match" json:"search_match"`

	// SetShellStartup propagates module initialization into subshell startup
	// files. Default: false.
	SetShellStartup bool `mapstructure:"set_shell_startup" yaml:"set_shell_startup" json:"set_shell_startup"`

	// SiteConfig is the logical name of the site customization package.
	// Default: siteconfig.
	SiteConfig string `mapstructure:"siteconfig" yaml:"siteconfig" json:"siteconfig"`

	// SiteSearchPath is the ordered list of directories scanned to locate the
	// site customization package. The first existing match wins.
	// Default: /etc/environment-modules, /usr/share/modules/init.
	SiteSearchPath []string `mapstructure:"site_search_path" yaml:"site_search_path" json:"site_search_path"`

	// HashTool is an explicit hashing executable used to classify the site
	// customization package. Default: "" (probe the candidate list).
	HashTool string `mapstructure:"hash_tool" yaml:"hash_tool" json:"hash_tool"`

	// TermBackground tunes color palette selection: dark or light.
	// Default: dark.
	TermBackground string `mapstructure:"term_background" yaml:"term_background" json:"term_background"`

	// UnloadMatchOrder selects which loaded module an unload specification
	// matches first: returnlast or returnfirst. Default: returnlast.
	UnloadMatchOrder string `mapstructure:"unload_match_order" yaml:"unload_match_order" json:"unload_match_order"`

	// Verbosity is the message verbosity level: silent, concise, normal,
	// verbose, verbose2, trace, debug or debug2. Default: normal.
	Verbosity string `mapstructure:"verbosity" yaml:"verbosity" json:"verbosity"`

	// CacheBufferBytes is the I/O buffer size used when reading module cache
	// files. Default: 32768. Valid range: 4096-1000000.
	CacheBufferBytes int `mapstructure:"cache_buffer_bytes" yaml:"cache_buffer_bytes" json:"cache_buffer_bytes"`

	// CacheExpirySecs is the number of seconds after which a module cache
	// file is considered stale. Default: 0 (never expires).
	CacheExpirySecs int `mapstructure:"cache_expiry_secs" yaml:"cache_expiry_secs" json:"cache_expiry_secs"`

	// MCookieVersionCheck verifies that the magic cookie of a modulefile
	// matches the running tool version. Default: true.
	MCookieVersionCheck bool `mapstructure:"mcookie_version_check" yaml:"mcookie_version_check" json:"mcookie_version_check"`
}

var (
	validColor            = []string{"always", "auto", "never"}
	validICase            = []string{"never", "search", "always"}
	validSearchMatch      = []string{"starts_with", "contains"}
	validTermBackground   = []string{"dark", "light"}
	validUnloadMatchOrder = []string{"returnlast", "returnfirst"}
	validVerbosity        = []string{
		"silent", "concise", "normal", "verbose", "verbose2",
		"trace", "debug", "debug2",
	}
)

const (
	cacheBufferBytesMin = 4096
	cacheBufferBytesMax = 1000000
)

// Validate checks enumerated and ranged fields. It is called once at load
// time so collectors never see an out-of-range value.
func (s *Settings) Validate() error {
	if !slices.Contains(validColor, s.Color) {
		return invalid("color", s.Color, validColor)
	}
	if !slices.Contains(validICase, s.ICase) {
		return invalid("icase", s.ICase, validICase)
	}
	if !slices.Contains(validSearchMatch, s.SearchMatch) {
		return invalid("search_match", s.SearchMatch, validSearchMatch)
	}
	if !slices.Contains(validTermBackground, s.TermBackground) {
		return invalid("term_background", s.TermBackground, validTermBackground)
	}
	if !slices.Contains(validUnloadMatchOrder, s.UnloadMatchOrder) {
		return invalid("unload_match_order", s.UnloadMatchOrder, validUnloadMatchOrder)
	}
	if !slices.Contains(validVerbosity, s.Verbosity) {
		return invalid("verbosity", s.Verbosity, validVerbosity)
	}
	if s.NearlyForbiddenDays < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("nearly_forbidden_days cannot be negative: %d", s.NearlyForbiddenDays))
	}
	if s.CacheBufferBytes < cacheBufferBytesMin || s.CacheBufferBytes > cacheBufferBytesMax {
		return errors.New(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("cache_buffer_bytes must be within %d-%d: %d",
				cacheBufferBytesMin, cacheBufferBytesMax, s.CacheBufferBytes))
	}
	if s.CacheExpirySecs < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("cache_expiry_secs cannot be negative: %d", s.CacheExpirySecs))
	}
	if len(s.SiteSearchPath) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "site_search_path cannot be empty")
	}
	return nil
}

func invalid(field, got string, allowed []string) error {
	return errors.NewWithContext(errors.ErrCodeInvalidConfig,
		fmt.Sprintf("invalid %s value: %q", field, got),
		map[string]any{"allowed": allowed})
}
