package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/treepack/treepack/archive"
)

// NewUnpackCmd creates and returns the unpack subcommand for the treepack CLI.
// It extracts a zip archive into a destination directory.
func NewUnpackCmd() *cobra.Command {
	var (
		subfolder bool
		only      []string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "unpack ARCHIVE [DEST]",
		Short: "Extract a zip archive into a directory",
		Long: `Extract the entries of ARCHIVE beneath DEST (default: current directory).

With --subfolder, entries are nested under a folder named after the archive.
With --only, extraction is limited to the named archive-internal paths; names
not present in the archive are skipped silently. Intermediate directories are
created as needed, and a single entry's failure does not abort the rest.`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			dest := "."
			if len(args) == 2 {
				dest = args[1]
			}
			runUnpack(cmd.Context(), args[0], dest, subfolder, only, verbose)
		},
	}

	cmd.Flags().BoolVarP(&subfolder, "subfolder", "s", false, "Nest entries under a folder named after the archive")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Extract only the named archive entries")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runUnpack(ctx context.Context, archivePath, dest string, subfolder bool, only []string, verbose bool) {
	logger := newLogger(verbose)
	defer logger.Sync()

	naming := archive.ExtractFlat
	if subfolder {
		naming = archive.ExtractSubfolder
	}

	res, err := archive.Extract(ctx, archivePath, dest, archive.ExtractOptions{
		Naming:    naming,
		Selection: only,
		Progress:  &consoleProgress{enabled: verbose},
		Logger:    logger,
	})
	if err != nil {
		if errors.Is(err, archive.ErrCancelled) {
			log.Fatalf("Cancelled after %d entries", res.EntriesWritten)
		}
		log.Fatalf("Failed to extract archive: %v", err)
	}

	fmt.Printf("Extracted %d entries to %s\n", res.EntriesWritten, res.Destination)
	if res.EntriesFailed > 0 {
		fmt.Printf("Failed to extract %d entries\n", res.EntriesFailed)
	}
}
