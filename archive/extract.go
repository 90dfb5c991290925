package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ExtractNaming selects where archive entries land under the destination.
type ExtractNaming int

const (
	// ExtractFlat writes entries directly under the destination root.
	ExtractFlat ExtractNaming = iota
	// ExtractSubfolder nests entries under a folder named after the archive.
	ExtractSubfolder
)

// ExtractOptions configures one extraction.
type ExtractOptions struct {
	Naming ExtractNaming
	// Selection limits extraction to the named internal paths. Nil means
	// every entry; names absent from the archive are skipped silently.
	Selection []string
	Progress  Progress    // optional
	Logger    *zap.Logger // optional
}

// ExtractResult summarizes a completed extraction.
type ExtractResult struct {
	Destination    string
	EntriesWritten int
	EntriesFailed  int
}

// Extract writes the entries of the zip archive at archivePath beneath
// destRoot. Intermediate directories are created before every file write,
// since archive formats do not guarantee directory entries precede their
// files. A single entry's failure is logged and counted but does not abort
// the rest of the extraction.
func Extract(ctx context.Context, archivePath, destRoot string, opts ExtractOptions) (ExtractResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("%w: %s", ErrNotArchive, archivePath)
	}
	defer r.Close()

	dest := destRoot
	if opts.Naming == ExtractSubfolder {
		base := filepath.Base(archivePath)
		dest = filepath.Join(destRoot, strings.TrimSuffix(base, filepath.Ext(base)))
	}
	abs, err := filepath.Abs(dest)
	if err != nil || abs == "" {
		return ExtractResult{}, ErrInvalidDestination
	}
	dest = abs

	var selected map[string]struct{}
	if opts.Selection != nil {
		selected = make(map[string]struct{}, len(opts.Selection))
		for _, name := range opts.Selection {
			selected[NormalizeSlash(name)] = struct{}{}
		}
	}

	res := ExtractResult{Destination: dest}
	total := len(r.File)

	for _, f := range r.File {
		if ctx.Err() != nil {
			return res, ErrCancelled
		}

		internal := NormalizeSlash(f.Name)
		if internal == "" {
			continue
		}
		isDir := strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir()
		if selected != nil {
			if _, ok := selected[internal]; !ok {
				continue
			}
		}

		target := filepath.Join(dest, filepath.FromSlash(internal))
		if err := extractEntry(f, target, isDir); err != nil {
			logger.Warn("failed to extract entry",
				zap.String("entry", f.Name),
				zap.Error(err))
			res.EntriesFailed++
		} else {
			res.EntriesWritten++
		}
		reportStep(opts.Progress, internal, total)
	}

	return res, nil
}

func extractEntry(f *zip.File, target string, isDir bool) error {
	if isDir {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(SafeParent(target), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
