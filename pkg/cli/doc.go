// Package cli implements the command-line interface for the modctl tool.
//
// # Overview
//
// The modctl CLI reports how the environment-module tool is configured on
// the current host. It is aimed at site administrators debugging module
// setups and at support staff asking users what their installation looks
// like.
//
// # Commands
//
// config - Report the effective configuration:
//
//	modctl config [--output FILE] [--format text|json|yaml] [--rcfile FILE]... [--dump]
//
// Reports resolved option values, host identification, rc file and cache
// state, and whether the site customization package matches the stock one.
// Output defaults to stdout in text format.
//
// # Global Flags
//
//	--config       Settings file path (default: built-in defaults plus
//	               MODULES_* environment variables)
//	--log-level    Log level: debug, info, warn, error (default: warn)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Logs are structured JSON on stderr so they never mix with report output
// on stdout.
package cli
