// Package monitor turns hardware samples into the hwmon report and drives
// both ways of showing it.
//
// # Refresh cycle
//
// Monitor.Tick runs one cycle:
//
//  1. Sample takes a Reading (CPU%, memory%, disk%, temperatures, battery)
//  2. History records CPU, memory and disk for the graphs
//  3. Evaluator compares the Reading with the alert thresholds
//  4. UpdateChecker supplies the cached release notice for the banner
//  5. Registry renders every configured section into lines
//
// CPU utilisation is measured since the previous sample, so it is taken
// once per cycle and shared through the Reading.
//
// # Sections
//
// Each Section renders a "=== Title ===" header and its lines. Failures
// never abort a cycle: the registry turns an error or a panic into a single
// diagnostic line under the header.
//
// # Presentation
//
// RunTerminal clears the screen and prints a frame every interval until
// its context is cancelled. Model is a Bubble Tea dashboard with braille
// graphs, a scrollable viewport and these keys:
//
//	F2, t       - Toggle summary / full view
//	F3, c       - Cycle theme
//	r           - Refresh now
//	↑/↓ PgUp/Dn - Scroll
//	?           - Toggle help overlay
//	q, Ctrl+C   - Quit
//
// The next tick is scheduled only after the previous frame arrives, so
// collections never overlap.
package monitor
