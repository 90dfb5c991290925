// Package cmd provides the command-line interface implementation for treepack.
//
// This package contains all the subcommand implementations for the treepack
// CLI tool. It uses the Cobra library for command structure and Fang for
// styled execution.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - pack: Directory tree packaging into zip archives
//   - unpack: Archive extraction with optional entry selection
//   - list: Archive entry listing
//   - compress/decompress: Single-file lz4 compression
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command coordinates all
// subcommands. The commands delegate the actual work to the archive package.
package cmd
