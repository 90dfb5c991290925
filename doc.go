// Package main provides the treepack command-line interface.
//
// treepack packages directory trees into single zip archives while optionally
// honoring git exclusion rules, and reverses the process on extraction. Empty
// directories survive the round trip, and the archive-internal layout is
// controlled by a naming policy.
//
// The main binary supports multiple subcommands:
//   - pack: Package a directory tree into a zip archive
//   - unpack: Extract a zip archive into a directory
//   - list: List the entries of a zip archive
//   - compress: Compress a single file with lz4
//   - decompress: Decompress a single lz4 file
package main
