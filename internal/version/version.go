// Package version provides version information for the qpa tools.
// qpad and qpactl are versioned independently so the daemon and the CLI
// can evolve separately. All versions follow semantic versioning (semver).

package version

// QpadVersion holds the current qpad daemon version.
// Format: major.minor.patch[-prerelease][+build]
const QpadVersion = "0.1.0-dev"

// QpactlVersion holds the current qpactl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const QpactlVersion = "0.1.0-dev"
