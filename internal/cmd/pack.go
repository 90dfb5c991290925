package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/treepack/treepack/archive"
)

// NewPackCmd creates and returns the pack subcommand for the treepack CLI.
// It packages a directory tree into a zip archive with git-aware filtering.
func NewPackCmd() *cobra.Command {
	var (
		mode    string
		naming  string
		name    string
		out     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "pack SOURCE",
		Short: "Package a directory tree into a zip archive",
		Long: `Package the directory tree at SOURCE into a single zip archive.

The git handling mode controls filtering:
  exclude-git        drop .git and .gitignore and apply gitignore rules
  respect-gitignore  keep .git and .gitignore but apply the rules to the rest
  include-all        no filtering

The naming policy controls the archive-internal layout:
  content  entries at the archive root
  folder   entries nested under the source folder name
  custom   entries nested under the name given with --name

The output location is "current" (inside SOURCE), "parent" (next to SOURCE),
or any explicit path.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runPack(cmd.Context(), args[0], mode, naming, name, out, verbose)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "exclude-git", "Git handling mode: exclude-git, respect-gitignore, include-all")
	cmd.Flags().StringVarP(&naming, "naming", "n", "folder", "Naming policy: content, folder, custom")
	cmd.Flags().StringVar(&name, "name", "", "Archive-internal folder name for --naming custom")
	cmd.Flags().StringVarP(&out, "out", "o", "parent", "Output location: current, parent, or an explicit path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runPack(ctx context.Context, src, mode, naming, name, out string, verbose bool) {
	logger := newLogger(verbose)
	defer logger.Sync()

	gitMode, err := parseGitMode(mode)
	if err != nil {
		log.Fatalf("Invalid mode: %v", err)
	}
	policy, err := parseNaming(naming)
	if err != nil {
		log.Fatalf("Invalid naming policy: %v", err)
	}

	res, err := archive.Build(ctx, src, archive.BuildOptions{
		Naming:      policy,
		ArchiveName: name,
		GitMode:     gitMode,
		Output:      parseOutput(out),
		Progress:    &consoleProgress{enabled: verbose},
		Logger:      logger,
	})
	if err != nil {
		if errors.Is(err, archive.ErrCancelled) {
			log.Fatalf("Cancelled, no archive written")
		}
		log.Fatalf("Failed to build archive: %v", err)
	}

	fmt.Printf("Created %s (%d bytes, %d entries)\n", res.OutputPath, res.BytesWritten, res.EntriesProcessed)
	if res.EntriesSkipped > 0 {
		fmt.Printf("Skipped %d entries\n", res.EntriesSkipped)
	}
}

// parseGitMode maps a CLI mode string to a GitMode.
func parseGitMode(s string) (archive.GitMode, error) {
	switch s {
	case "exclude-git":
		return archive.GitModeExclude, nil
	case "respect-gitignore":
		return archive.GitModeRespect, nil
	case "include-all":
		return archive.GitModeIncludeAll, nil
	default:
		return 0, fmt.Errorf("unknown git handling mode %q", s)
	}
}

// parseNaming maps a CLI naming string to a NamingPolicy.
func parseNaming(s string) (archive.NamingPolicy, error) {
	switch s {
	case "content":
		return archive.NamingOnlyContent, nil
	case "folder":
		return archive.NamingWithFolder, nil
	case "custom":
		return archive.NamingCustom, nil
	default:
		return 0, fmt.Errorf("unknown naming policy %q", s)
	}
}

// parseOutput maps a CLI output string to an OutputLocation. Anything that is
// not one of the well-known keywords is treated as an explicit path.
func parseOutput(s string) archive.OutputLocation {
	switch s {
	case "current":
		return archive.OutputLocation{Kind: archive.OutputCurrentDir}
	case "parent":
		return archive.OutputLocation{Kind: archive.OutputParentDir}
	default:
		return archive.OutputLocation{Kind: archive.OutputCustomPath, Path: s}
	}
}
