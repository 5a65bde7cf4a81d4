package scanner

import (
	"os"
	"time"

	cdeperrors "cdep/internal/errors"
	"cdep/internal/graph"
	"cdep/internal/hashing"
	"cdep/internal/lang"
	"cdep/internal/logging"
	"cdep/internal/paths"
)

// Stats summarizes a completed scan.
type Stats struct {
	Roots      int
	Files      int
	Edges      int
	Unresolved int
	Skipped    int
	Duration   time.Duration
}

// BuildIndex runs the full scan pipeline: discover candidates, hash
// their normalized content, parse and resolve their includes, and
// accumulate everything into a fresh index. The index is rebuilt from
// scratch on every call; nothing is merged incrementally.
//
// Per-file read failures are skipped with a warning and never abort the
// scan. Unresolved quoted includes and all angled includes are dropped
// from the graph silently; unresolved counts surface in Stats only.
func BuildIndex(roots []string, opts Options, logger *logging.Logger) (*graph.Index, *Stats, error) {
	start := time.Now()

	var canonRoots []string
	for _, root := range roots {
		canon := paths.Canonicalize(root)
		if info, err := os.Stat(canon); err == nil && info.IsDir() {
			canonRoots = append(canonRoots, canon)
		}
	}
	if len(canonRoots) == 0 {
		return nil, nil, cdeperrors.New(cdeperrors.NoRoots, "no usable root directories", nil)
	}

	files, err := ListFiles(canonRoots, opts, logger)
	if err != nil {
		return nil, nil, err
	}

	idx := graph.NewIndex(canonRoots)
	headerRoots := lang.HeaderRoots(canonRoots)
	stats := &Stats{Roots: len(canonRoots)}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			logger.Warn("skipping unreadable file", map[string]interface{}{
				"file": file, "error": err.Error(),
			})
			stats.Skipped++
			continue
		}

		idx.SetHash(file, hashing.HashBytes(file, data))

		stripped := lang.Strip(data)
		for _, inc := range lang.ParseIncludes(stripped) {
			if inc.Kind == lang.Angled {
				continue
			}
			resolved, ok := lang.Resolve(file, inc, headerRoots)
			if !ok {
				stats.Unresolved++
				logger.Debug("unresolved include", map[string]interface{}{
					"file": file, "include": inc.Path,
				})
				continue
			}
			idx.AddEdge(file, resolved)
		}
	}

	stats.Files = idx.FileCount()
	stats.Edges = idx.EdgeCount()
	stats.Duration = time.Since(start)

	logger.Info("scan complete", map[string]interface{}{
		"roots":      stats.Roots,
		"files":      stats.Files,
		"edges":      stats.Edges,
		"unresolved": stats.Unresolved,
		"durationMs": stats.Duration.Milliseconds(),
	})

	return idx, stats, nil
}
