// Package archive implements the treepack archive engine.
//
// This package contains the building blocks for packing a directory tree into
// a single zip archive and unpacking it again. It handles directory
// enumeration, gitignore-style exclusion, archive-internal path mapping, and
// streaming the result to disk with progress reporting and cooperative
// cancellation.
//
// Key Components:
//
// Directory Enumeration:
//   - Eager recursive listing of a source root into Entry descriptors
//   - Empty directories are preserved so they round-trip through archives
//   - Unreadable subdirectories are skipped, not fatal
//
// Ignore Rules:
//   - Gitignore-style rule files parsed into a RuleSet
//   - Each rule is widened with compatibility variants so every common
//     anchoring interpretation of a rule keeps matching
//   - Unreadable rule files fail open: nothing is excluded
//
// Path Mapping:
//   - Naming policies control the archive-internal layout (bare content,
//     nested under the source folder name, or a custom name)
//   - Mapped paths are always slash-separated and never escape the archive
//     root via ".." segments or drive-letter prefixes
//
// Building and Extraction:
//   - Build buffers the whole container in memory and performs one atomic
//     destination write, so a cancelled run leaves the filesystem untouched
//   - Extract recreates intermediate directories on demand and tolerates
//     per-entry failures
//
// Single-File Compression:
//   - CompressFile and DecompressFile handle the lz4 single-file path,
//     separate from the zip container
//
// Each exported operation owns its state for the duration of one call, so
// independent builds and extractions can run concurrently.
package archive
