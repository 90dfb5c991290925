// Package version provides version information and build metadata for treepack.
//
// This package supports both compile-time version injection via build flags
// and runtime version detection using Go's build info, so version reporting
// works in development, CI/CD, and release scenarios.
//
// Version Information Sources:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// Build Integration:
// Release builds set version information at build time using:
//   -ldflags "-X package/version.Version=v1.0.0 -X package/version.Commit=abc123 -X package/version.Date=2023-01-01T00:00:00Z"
package version
