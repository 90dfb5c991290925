package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GitMode governs whether .git and .gitignore are included and whether
// ignore rules are enforced. The mode is selected once per operation.
type GitMode int

const (
	// GitModeExclude drops .git and .gitignore themselves and applies ignore rules.
	GitModeExclude GitMode = iota
	// GitModeRespect keeps .git and .gitignore but applies ignore rules to the rest.
	GitModeRespect
	// GitModeIncludeAll performs no filtering at all.
	GitModeIncludeAll
)

// OutputKind selects how the archive destination is derived.
type OutputKind int

const (
	// OutputCurrentDir writes the archive inside the source folder.
	OutputCurrentDir OutputKind = iota
	// OutputParentDir writes the archive next to the source folder.
	OutputParentDir
	// OutputCustomPath writes the archive to an explicit path.
	OutputCustomPath
)

// OutputLocation describes where the built archive is written. Path is
// consulted only for OutputCustomPath.
type OutputLocation struct {
	Kind OutputKind
	Path string
}

// Progress receives incremental progress reports during long operations.
// Implementations must tolerate being called once per archive entry.
type Progress interface {
	Report(message string, increment float64)
}

// BuildOptions configures one archive build.
type BuildOptions struct {
	Naming      NamingPolicy
	ArchiveName string // custom name for NamingCustom, falls back to the root folder name
	GitMode     GitMode
	Output      OutputLocation
	Progress    Progress    // optional
	Logger      *zap.Logger // optional
}

// Result summarizes a completed build.
type Result struct {
	OutputPath       string
	BytesWritten     int64
	EntriesProcessed int
	EntriesSkipped   int
}

// Build packages the directory tree at root into a single zip archive.
//
// The destination is resolved before any data is read, and the archive is
// buffered fully in memory so the only destination write is a single atomic
// one. Cancellation is polled once per entry; a cancelled build returns
// ErrCancelled and leaves the filesystem unchanged. Unreadable source files
// are skipped with a warning and counted, never fatal.
func Build(ctx context.Context, root string, opts BuildOptions) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return Result{}, fmt.Errorf("resolve source: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return Result{}, fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return Result{}, ErrExpectedDirectory
	}

	dest, err := resolveDestination(root, opts.Output)
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Result{}, fmt.Errorf("create destination directory: %w", err)
	}

	var rules *RuleSet
	if opts.GitMode != GitModeIncludeAll {
		// Absence of .gitignore is not an error; filtering then only
		// covers the explicit .git exclusion.
		rulePath := filepath.Join(root, ".gitignore")
		if _, statErr := os.Stat(rulePath); statErr == nil {
			rules = LoadRuleFile(rulePath, logger)
		} else {
			rules = &RuleSet{}
		}
		logger.Debug("ignore rules active",
			zap.Strings("patterns", rules.Patterns()))
	}

	entries, err := Enumerate(root, logger)
	if err != nil {
		return Result{}, fmt.Errorf("enumerate source: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	rootName := filepath.Base(root)
	total := len(entries)
	res := Result{OutputPath: dest}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return Result{}, ErrCancelled
		}

		if excluded(entry.RelativePath, opts.GitMode, rules) {
			res.EntriesSkipped++
			reportStep(opts.Progress, entry.RelativePath, total)
			continue
		}

		internal := MapPath(entry.RelativePath, opts.Naming, rootName, opts.ArchiveName)
		if internal == "" {
			res.EntriesSkipped++
			reportStep(opts.Progress, entry.RelativePath, total)
			continue
		}

		if entry.IsDir {
			// Directories become zero-length entries so empty
			// directories round-trip through extraction.
			if _, err := zw.Create(internal + "/"); err != nil {
				return Result{}, fmt.Errorf("add directory entry %s: %w", internal, err)
			}
		} else {
			data, readErr := os.ReadFile(entry.AbsolutePath)
			if readErr != nil {
				logger.Warn("skipping unreadable file",
					zap.String("path", entry.AbsolutePath),
					zap.Error(readErr))
				res.EntriesSkipped++
				reportStep(opts.Progress, entry.RelativePath, total)
				continue
			}
			w, err := zw.Create(internal)
			if err != nil {
				return Result{}, fmt.Errorf("add entry %s: %w", internal, err)
			}
			if _, err := w.Write(data); err != nil {
				return Result{}, fmt.Errorf("write entry %s: %w", internal, err)
			}
		}

		res.EntriesProcessed++
		reportStep(opts.Progress, entry.RelativePath, total)
	}

	if err := zw.Close(); err != nil {
		return Result{}, fmt.Errorf("finalize archive: %w", err)
	}
	if ctx.Err() != nil {
		return Result{}, ErrCancelled
	}

	if err := writeFileAtomic(dest, buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("write archive: %w", err)
	}

	res.BytesWritten = int64(buf.Len())
	logger.Info("archive written",
		zap.String("path", dest),
		zap.Int64("bytes", res.BytesWritten),
		zap.Int("processed", res.EntriesProcessed),
		zap.Int("skipped", res.EntriesSkipped))
	return res, nil
}

// excluded applies the git handling mode to one slash-separated relative path.
func excluded(relPath string, mode GitMode, rules *RuleSet) bool {
	switch mode {
	case GitModeIncludeAll:
		return false
	case GitModeExclude:
		if relPath == ".git" || strings.HasPrefix(relPath, ".git/") || relPath == ".gitignore" {
			return true
		}
		return rules.Matches(relPath)
	default:
		return rules.Matches(relPath)
	}
}

// resolveDestination derives the absolute archive path for the source root.
// It fails fast with ErrInvalidDestination before anything is written.
func resolveDestination(root string, loc OutputLocation) (string, error) {
	name := filepath.Base(root) + ".zip"

	var dest string
	switch loc.Kind {
	case OutputCurrentDir:
		dest = filepath.Join(root, name)
	case OutputParentDir:
		dest = filepath.Join(filepath.Dir(root), name)
	case OutputCustomPath:
		p := strings.TrimSpace(loc.Path)
		if p == "" {
			return "", ErrInvalidDestination
		}
		if strings.EqualFold(filepath.Ext(p), ".zip") {
			dest = p
		} else {
			dest = filepath.Join(p, name)
		}
	default:
		return "", ErrInvalidDestination
	}

	abs, err := filepath.Abs(dest)
	if err != nil || abs == "" {
		return "", ErrInvalidDestination
	}
	return abs, nil
}

// writeFileAtomic writes data through a uniquely named temp file in the
// destination directory and renames it into place, so a failed write never
// leaves a partial destination file observable.
func writeFileAtomic(dest string, data []byte) error {
	tmp := dest + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func reportStep(p Progress, message string, total int) {
	if p == nil || total <= 0 {
		return
	}
	p.Report(message, 100.0/float64(total))
}
