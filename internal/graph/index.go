// Package graph holds the persisted include graph and the impact
// queries that run against it.
package graph

import (
	"sort"
)

// IndexVersion is the current version of the index artifact format.
// An artifact with a different version is rejected on load; a scan
// always rebuilds from scratch, so there are no migrations.
const IndexVersion = 1

// Index is the persisted unit of state: scanned roots, the per-file
// content hash table, and the forward and reverse edge tables. All keys
// and values are canonical absolute paths; digests are lowercase hex.
type Index struct {
	Version int                 `json:"version"`
	Roots   []string            `json:"roots"`
	Hash    map[string]string   `json:"hash"`
	Edges   map[string][]string `json:"edges"`
	Rev     map[string][]string `json:"rev"`
}

// NewIndex creates an empty index over the given canonical roots.
func NewIndex(roots []string) *Index {
	return &Index{
		Version: IndexVersion,
		Roots:   append([]string(nil), roots...),
		Hash:    make(map[string]string),
		Edges:   make(map[string][]string),
		Rev:     make(map[string][]string),
	}
}

// AddEdge records that `from` lexically includes `to`, appending to both
// the forward and reverse adjacency tables. Duplicate edges are allowed
// structurally; normalization collapses them before persistence. Cycles
// are legal and handled by the traversal, not rejected here.
func (idx *Index) AddEdge(from, to string) {
	idx.Edges[from] = append(idx.Edges[from], to)
	idx.Rev[to] = append(idx.Rev[to], from)
}

// SetHash records the content digest for a file.
func (idx *Index) SetHash(file, digest string) {
	idx.Hash[file] = digest
}

// FileCount returns the number of hashed files.
func (idx *Index) FileCount() int {
	return len(idx.Hash)
}

// EdgeCount returns the number of distinct forward edges. Duplicate
// includes of the same file are counted once, matching what the
// normalized artifact persists.
func (idx *Index) EdgeCount() int {
	n := 0
	for _, targets := range idx.Edges {
		seen := make(map[string]bool, len(targets))
		for _, t := range targets {
			if !seen[t] {
				seen[t] = true
				n++
			}
		}
	}
	return n
}

// Includers returns the files that directly include the given file.
func (idx *Index) Includers(file string) []string {
	return idx.Rev[file]
}

// normalize sorts and deduplicates every slice in the index so that
// scanning an unchanged tree re-serializes byte-identically.
func (idx *Index) normalize() {
	sort.Strings(idx.Roots)
	idx.Roots = dedupSorted(idx.Roots)
	for from, targets := range idx.Edges {
		sort.Strings(targets)
		idx.Edges[from] = dedupSorted(targets)
	}
	for to, sources := range idx.Rev {
		sort.Strings(sources)
		idx.Rev[to] = dedupSorted(sources)
	}
}

func dedupSorted(s []string) []string {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
