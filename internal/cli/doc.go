// Package cli implements the hwmon command-line interface.
//
// The root command starts the interactive dashboard. Subcommands cover the
// plain terminal loop and a few inspection helpers:
//
//	hwmon                  - interactive dashboard (same as "hwmon dashboard")
//	hwmon watch [--once]   - print the report every interval
//	hwmon sections         - list the report sections
//	hwmon themes           - list the dashboard themes
//	hwmon config           - print the effective configuration as YAML
//	hwmon version          - print version information
//	hwmon completion SHELL - generate shell completion
//
// # Settings
//
// Every command that samples the machine resolves its settings the same
// way: the config file found by config.Find, HWMON_* environment
// overrides, then the global flags (--interval, --theme, --no-update-check).
// The result is validated against the monitor's section registry and theme
// list before anything starts.
package cli
