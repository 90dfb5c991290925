package cmd

import (
	"github.com/spf13/cobra"
	"github.com/treepack/treepack/version"
)

// NewRootCmd creates and returns the root cobra command for the treepack CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treepack",
		Short: "treepack - Package directory trees into zip archives with git-aware filtering",
		Long: `treepack packages a directory tree into a single zip archive and reverses
the process on extraction.

Packing can honor gitignore rules, drop .git and .gitignore entirely, or
include everything. Empty directories survive the round trip, and archive
layout is controlled by a naming policy (bare content, nested under the
folder name, or a custom name).

Use subcommands to perform different operations:
  - pack: Package a directory tree into a zip archive
  - unpack: Extract a zip archive into a directory
  - list: List the entries of a zip archive
  - compress: Compress a single file with lz4
  - decompress: Decompress a single lz4 file`,
		Version: version.GetFullVersion(),
	}

	groupArchive := "archive"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	packCmd := NewPackCmd()
	unpackCmd := NewUnpackCmd()
	listCmd := NewListCmd()
	compressCmd := NewCompressCmd()
	decompressCmd := NewDecompressCmd()

	packCmd.GroupID = groupArchive
	unpackCmd.GroupID = groupArchive
	listCmd.GroupID = groupUtilities
	compressCmd.GroupID = groupUtilities
	decompressCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)

	return rootCmd
}
