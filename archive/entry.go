package archive

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Entry is one filesystem object discovered during enumeration. RelativePath
// is slash-separated and relative to the enumeration root regardless of host
// OS. Entries are immutable once produced.
type Entry struct {
	AbsolutePath string
	RelativePath string
	IsDir        bool
}

// Enumerate recursively lists root into an ordered slice of entries. The
// slice is fully materialized so callers know the total count up front for
// progress accounting.
//
// The root itself is never emitted. A subdirectory is emitted before its
// children, which is how empty directories survive into an archive. Sibling
// order follows os.ReadDir and is not guaranteed stable across filesystems.
//
// A subdirectory that cannot be read is logged and skipped; enumeration
// continues with the rest of the tree. Only an unreadable root is fatal.
func Enumerate(root string, logger *zap.Logger) ([]Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrExpectedDirectory
	}

	var entries []Entry
	enumerateInto(root, "", &entries, logger)
	return entries, nil
}

func enumerateInto(dir, rel string, entries *[]Entry, logger *zap.Logger) {
	children, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("skipping unreadable directory",
			zap.String("path", dir),
			zap.Error(err))
		return
	}

	for _, child := range children {
		childAbs := filepath.Join(dir, child.Name())
		childRel := child.Name()
		if rel != "" {
			childRel = rel + "/" + child.Name()
		}

		if child.IsDir() {
			*entries = append(*entries, Entry{
				AbsolutePath: childAbs,
				RelativePath: childRel,
				IsDir:        true,
			})
			enumerateInto(childAbs, childRel, entries, logger)
			continue
		}

		*entries = append(*entries, Entry{
			AbsolutePath: childAbs,
			RelativePath: childRel,
		})
	}
}
