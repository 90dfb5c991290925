package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/treepack/treepack/archive"
)

// NewCompressCmd creates and returns the compress subcommand for the treepack
// CLI. It compresses a single file with lz4, separate from the zip path.
func NewCompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress FILE [OUTPUT]",
		Short: "Compress a single file with lz4",
		Long: `Compress FILE into an lz4 frame.

OUTPUT defaults to FILE.lz4. This is the single-file path; use pack for
directory trees.`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			src := args[0]
			dst := src + ".lz4"
			if len(args) == 2 {
				dst = args[1]
			}
			runCompress(src, dst)
		},
	}

	return cmd
}

func runCompress(src, dst string) {
	n, err := archive.CompressFile(src, dst)
	if err != nil {
		log.Fatalf("Failed to compress %s: %v", src, err)
	}
	fmt.Printf("Compressed %s -> %s (%d bytes)\n", src, dst, n)
}
