// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Light-curve TUI, JSON export, surface-brightness mode
// 0.2.0 - Flat-file response cache, local ephemeris file override
// 0.1.0 - Initial release: Horizons fetch, coma flux model, text report
