package graph

import (
	"os"
	"sort"

	"cdep/internal/hashing"
	"cdep/internal/paths"
)

// Outcome distinguishes the terminal states of an impact query. All
// three are successful outcomes; only index load failures are errors.
type Outcome int

const (
	// Affected: dirty files exist and reach at least one translation unit.
	Affected Outcome = iota
	// NoChanges: every candidate's digest matches the stored one.
	NoChanges
	// NoAffected: dirty files exist but no translation unit is downstream
	// of any of them (e.g. an orphan header).
	NoAffected
)

// Result is the outcome of an impact query.
type Result struct {
	Outcome Outcome
	// Dirty lists the files whose recomputed digest differs from (or is
	// absent in) the stored hash table, sorted.
	Dirty []string
	// TranslationUnits lists the affected translation units, sorted.
	// Empty unless Outcome is Affected.
	TranslationUnits []string
}

// Analyze maps a set of possibly-changed paths to the translation units
// whose compiled output could be affected.
//
// Directories among the inputs expand to every indexed file under them.
// Files are taken as-is, even when absent from the index: a newly added
// file is still a dirtiness candidate. Re-hashing uses the missing-file
// sentinel, so a deleted file always counts as dirty. The reverse
// traversal keeps a visited set, making mutually-including headers safe.
func Analyze(idx *Index, changedPaths []string) *Result {
	candidates := expand(idx, changedPaths)

	var dirty []string
	for _, file := range candidates {
		digest := hashing.HashFileOrMissing(file)
		stored, ok := idx.Hash[file]
		if !ok || stored != digest {
			dirty = append(dirty, file)
		}
	}
	sort.Strings(dirty)

	if len(dirty) == 0 {
		return &Result{Outcome: NoChanges}
	}

	units := reverseReach(idx, dirty)
	if len(units) == 0 {
		return &Result{Outcome: NoAffected, Dirty: dirty}
	}
	return &Result{Outcome: Affected, Dirty: dirty, TranslationUnits: units}
}

// expand canonicalizes the inputs and replaces directories with every
// indexed file underneath them.
func expand(idx *Index, changedPaths []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(file string) {
		if !seen[file] {
			seen[file] = true
			out = append(out, file)
		}
	}

	for _, p := range changedPaths {
		canon := paths.Canonicalize(p)
		if isDirInput(idx, canon) {
			for file := range idx.Hash {
				if paths.IsUnder(file, canon) {
					add(file)
				}
			}
			continue
		}
		add(canon)
	}
	return out
}

// isDirInput decides whether a changed path names a directory. A path
// that no longer exists on disk still counts as a directory when
// indexed files lie beneath it, so deleting a whole directory expands
// to its (now missing, hence dirty) former contents.
func isDirInput(idx *Index, canon string) bool {
	if info, err := os.Stat(canon); err == nil {
		return info.IsDir()
	}
	if _, indexed := idx.Hash[canon]; indexed {
		return false
	}
	for file := range idx.Hash {
		if file != canon && paths.IsUnder(file, canon) {
			return true
		}
	}
	return false
}

// reverseReach walks the reverse-edge table from the dirty seeds and
// collects every reachable translation unit, sorted.
func reverseReach(idx *Index, dirty []string) []string {
	visited := make(map[string]bool, len(dirty))
	queue := make([]string, 0, len(dirty))
	for _, file := range dirty {
		if !visited[file] {
			visited[file] = true
			queue = append(queue, file)
		}
	}

	var units []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if hashing.IsTranslationUnit(node) {
			units = append(units, node)
		}
		for _, parent := range idx.Rev[node] {
			if !visited[parent] {
				visited[parent] = true
				queue = append(queue, parent)
			}
		}
	}
	sort.Strings(units)
	return units
}
