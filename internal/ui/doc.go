// Package ui provides the styled building blocks for hwmon's
// non-interactive command output: tables, the version header, colors and
// status symbols. The dashboard has its own theme-aware styles in the
// monitor package.
//
// Colors are lipgloss hex values. DisableColors switches every style to
// plain text for --no-color.
package ui
