package archive

import (
	"path/filepath"
	"strings"
)

// NamingPolicy selects how source-relative paths map to archive-internal paths.
type NamingPolicy int

const (
	// NamingOnlyContent stores entries at the archive root without a wrapping folder.
	NamingOnlyContent NamingPolicy = iota
	// NamingWithFolder nests every entry under the source folder's name.
	NamingWithFolder
	// NamingCustom nests every entry under a caller-provided name.
	NamingCustom
)

// NormalizeSlash canonicalizes a path to forward slashes with no leading
// separator. It never fails; malformed input degrades to a best-effort clean
// relative path.
func NormalizeSlash(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = stripDrivePrefix(p)

	parts := strings.Split(p, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".", "..":
			// ".." is dropped rather than resolved so the result can
			// never climb above the root it is joined onto.
			continue
		}
		out = append(out, part)
	}
	return strings.Join(out, "/")
}

// SafeParent returns the parent directory of p, or p itself when no parent
// can be derived. It never fails.
func SafeParent(p string) string {
	if p == "" {
		return p
	}
	parent := filepath.Dir(p)
	if parent == "" || parent == "." {
		return p
	}
	return parent
}

// MapPath converts a source-relative path into an archive-internal path under
// the given naming policy. rootName is the source folder's base name;
// customName is consulted only for NamingCustom and falls back to rootName
// when empty. The function is pure: identical inputs always yield identical
// outputs.
func MapPath(relPath string, policy NamingPolicy, rootName, customName string) string {
	rel := NormalizeSlash(relPath)

	switch policy {
	case NamingWithFolder:
		return joinInternal(NormalizeSlash(rootName), rel)
	case NamingCustom:
		name := NormalizeSlash(customName)
		if name == "" {
			name = NormalizeSlash(rootName)
		}
		return joinInternal(name, rel)
	default:
		return rel
	}
}

func joinInternal(prefix, rel string) string {
	if rel == "" {
		return prefix
	}
	if prefix == "" {
		return rel
	}
	return prefix + "/" + rel
}

// stripDrivePrefix removes a Windows drive-letter prefix such as "C:".
func stripDrivePrefix(p string) string {
	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		return p[2:]
	}
	return p
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
