// Package scanner discovers candidate files and builds the include
// graph index from them.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cdeperrors "cdep/internal/errors"
	"cdep/internal/logging"
	"cdep/internal/paths"
)

// Options controls file discovery.
type Options struct {
	// Ignores are plain substrings; a path containing any of them is
	// skipped. Merge config.DefaultIgnores in before calling.
	Ignores []string
	// Extensions is the recognized extension set, without dots. Files
	// with no extension are always skipped.
	Extensions []string
	// FollowSymlinks walks through directory symlinks. Cycles are broken
	// by tracking resolved directories.
	FollowSymlinks bool
}

// ListFiles walks the roots and returns the canonical paths of every
// relevant file, sorted and deduplicated. Nonexistent roots are skipped
// with a warning; supplying no roots at all is a fatal error.
func ListFiles(roots []string, opts Options, logger *logging.Logger) ([]string, error) {
	if len(roots) == 0 {
		return nil, cdeperrors.New(cdeperrors.NoRoots, "provide at least one root directory", nil)
	}

	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.TrimPrefix(strings.TrimSpace(e), ".")] = true
	}

	w := &walker{
		opts:    opts,
		exts:    exts,
		logger:  logger,
		visited: make(map[string]bool),
	}

	for _, root := range roots {
		canon := paths.Canonicalize(root)
		if _, err := os.Stat(canon); err != nil {
			logger.Warn("skipping non-existent root", map[string]interface{}{
				"root": root,
			})
			continue
		}
		if err := w.walk(canon); err != nil {
			return nil, err
		}
	}

	sort.Strings(w.found)
	return dedup(w.found), nil
}

type walker struct {
	opts    Options
	exts    map[string]bool
	logger  *logging.Logger
	visited map[string]bool
	found   []string
}

func (w *walker) walk(dir string) error {
	if w.visited[dir] {
		return nil
	}
	w.visited[dir] = true

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			w.logger.Debug("skipping unreadable path", map[string]interface{}{
				"path": path, "error": err.Error(),
			})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if w.ignored(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 && w.opts.FollowSymlinks {
			resolved := paths.Canonicalize(path)
			if info, err := os.Stat(resolved); err == nil && info.IsDir() {
				return w.walk(resolved)
			}
		}

		ext := paths.Ext(path)
		if ext == "" || !w.exts[ext] {
			return nil
		}

		w.found = append(w.found, paths.Canonicalize(path))
		return nil
	})
}

func (w *walker) ignored(path string) bool {
	for _, pat := range w.opts.Ignores {
		if strings.Contains(path, pat) {
			return true
		}
	}
	return false
}

func dedup(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
