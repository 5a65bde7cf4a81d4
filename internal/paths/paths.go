// Package paths implements the canonical file identity used as the key
// for every graph and hash lookup. The same on-disk file always
// canonicalizes to the same identity regardless of which root or
// relative path was used to reach it.
package paths

import (
	"path/filepath"
	"strings"
)

// Canonicalize converts a path to its canonical absolute form, resolving
// symlinks where possible. It is deliberately lenient: if the path does
// not exist (or symlink resolution fails for any other reason), the
// cleaned absolute path is returned instead of an error, so that missing
// files can still act as graph keys and change signals.
func Canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}

// IsUnder reports whether path lies under root (or is root itself).
// Both arguments must already be canonical.
func IsUnder(path, root string) bool {
	if path == root {
		return true
	}
	root = strings.TrimSuffix(root, string(filepath.Separator))
	return strings.HasPrefix(path, root+string(filepath.Separator))
}

// Dir returns the containing directory of a canonical path.
func Dir(path string) string {
	return filepath.Dir(path)
}

// Ext returns the path's extension without the leading dot. Matching is
// case-sensitive.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
