package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/treepack/treepack/archive"
)

// NewDecompressCmd creates and returns the decompress subcommand for the
// treepack CLI. It reverses the single-file lz4 compression path.
func NewDecompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress FILE [OUTPUT]",
		Short: "Decompress a single lz4 file",
		Long: `Decompress the lz4 frame FILE.

OUTPUT defaults to FILE without its .lz4 suffix, or FILE.out when FILE does
not end in .lz4.`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			src := args[0]
			dst := defaultDecompressName(src)
			if len(args) == 2 {
				dst = args[1]
			}
			runDecompress(src, dst)
		},
	}

	return cmd
}

func defaultDecompressName(src string) string {
	if strings.HasSuffix(src, ".lz4") {
		return strings.TrimSuffix(src, ".lz4")
	}
	return src + ".out"
}

func runDecompress(src, dst string) {
	n, err := archive.DecompressFile(src, dst)
	if err != nil {
		log.Fatalf("Failed to decompress %s: %v", src, err)
	}
	fmt.Printf("Decompressed %s -> %s (%d bytes)\n", src, dst, n)
}
