package cmd

import (
	"archive/zip"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// NewListCmd creates and returns the list subcommand for the treepack CLI.
// It prints the entries of a zip archive.
func NewListCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "list ARCHIVE",
		Short: "List the entries of a zip archive",
		Long: `List every entry of ARCHIVE with its uncompressed size.

Entries are colorized by file extension so related files stand out when
scanning large archives. Use --no-color for plain output.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runList(args[0], noColor)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colorized output")

	return cmd
}

func runList(path string, noColor bool) {
	r, err := zip.OpenReader(path)
	if err != nil {
		log.Fatalf("Failed to open archive: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if noColor {
			fmt.Printf("%10d  %s\n", f.UncompressedSize64, f.Name)
			continue
		}
		fmt.Printf("%10d  \x1b[38;5;%dm%s\x1b[0m\n", f.UncompressedSize64, entryColor(f.Name), f.Name)
	}
	fmt.Printf("Total entries: %d\n", len(r.File))
}

// entryColor picks a stable 256-color palette index for an entry name. All
// entries with the same extension get the same color; directories share one.
func entryColor(name string) int {
	key := strings.ToLower(filepath.Ext(name))
	if strings.HasSuffix(name, "/") {
		key = "/"
	}
	h := int(colorhash.HashString(key))
	if h < 0 {
		h = -h
	}
	// 6x6x6 color cube starts at index 16.
	return 16 + h%216
}
