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
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix recognized by the loader,
// e.g. MODULES_PAGER overrides the pager setting.
const EnvPrefix = "MODULES"

// Load reads the effective Settings from an optional config file and the
// environment, applies documented defaults for everything left unset, and
// validates the result. An empty path skips file loading entirely; a
// non-empty path must exist.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Default returns the documented default Settings without consulting any
// file or environment source.
func Default() *Settings {
	v := viper.New()
	setDefaults(v)

	var s Settings
	// Defaults are statically known valid, only a decode mismatch can fail.
	if err := v.Unmarshal(&s); err != nil {
		panic(fmt.Sprintf("invalid built-in defaults: %v", err))
	}
	return &s
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("auto_handling", true)
	v.SetDefault("avail_indepth", true)
	v.SetDefault("collection_pin_version", false)
	v.SetDefault("collection_target", "")
	v.SetDefault("color", "auto")
	v.SetDefault("contact", "root@localhost")
	v.SetDefault("editor", "vi")
	v.SetDefault("extended_default", true)
	v.SetDefault("home", "/usr/share/modules")
	v.SetDefault("icase", "search")
	v.SetDefault("ignored_dirs", "CVS RCS SCCS .svn .git .SYNC .sos")
	v.SetDefault("implicit_default", true)
	v.SetDefault("implicit_requirement", true)
	v.SetDefault("locked_configs", "")
	v.SetDefault("nearly_forbidden_days", 14)
	v.SetDefault("pager", "less -eFKMqsuR")
	v.SetDefault("quarantine_support", false)
	v.SetDefault("rcfile", "/etc/environment-modules/rc")
	v.SetDefault("adminfile", "/etc/environment-modules/admin")
	v.SetDefault("search_match", "starts_with")
	v.SetDefault("set_shell_startup", false)
	v.SetDefault("siteconfig", "siteconfig")
	v.SetDefault("site_search_path", []string{
		"/etc/environment-modules",
		"/usr/share/modules/init",
	})
	v.SetDefault("hash_tool", "")
	v.SetDefault("term_background", "dark")
	v.SetDefault("unload_match_order", "returnlast")
	v.SetDefault("verbosity", "normal")
	v.SetDefault("cache_buffer_bytes", 32768)
	v.SetDefault("cache_expiry_secs", 0)
	v.SetDefault("mcookie_version_check", true)
}
