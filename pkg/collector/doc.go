// Package collector builds the canonical configuration snapshot for the
// current host.
//
// # Overview
//
// The collector package gathers every reportable configuration value into a
// single setting.Snapshot: resolved option values, host identification, the
// tool version, auxiliary file availability, and the site customization
// package classification. Collection runs at most once per process; the
// result (or the fatal error) is memoized and every later call returns the
// same snapshot.
//
// # Core Types
//
// Collector: Memoizing snapshot builder
//
//	type Collector struct {
//	    Settings   *config.Settings   // Resolved option values
//	    Identifier SiteIdentifier     // Site package classifier
//	    FS         probe.FS           // File availability probes
//	    Runner     probe.Runner       // Host command execution
//	    Version    string             // Tool version string
//	}
//
// # Usage
//
//	c := &collector.Collector{
//	    Settings:   cfg,
//	    Identifier: ident,
//	    FS:         probe.OSFS{},
//	    Runner:     probe.ExecRunner{},
//	    Version:    "5.6.1",
//	}
//
//	snap, err := c.Snapshot(ctx)
//	if err != nil {
//	    // Only an unresolvable hashing tool is fatal.
//	    return err
//	}
//
// # Error Handling
//
// Probe failures degrade gracefully: a failing host identification command
// still reports whatever output it produced, and an absent auxiliary file is
// reported with a visible placeholder suffix. The single fatal condition is
// errors.ErrCodeHashSumUnavailable from the site package identifier, which
// aborts the snapshot entirely.
package collector
