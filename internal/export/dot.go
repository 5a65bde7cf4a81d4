// Package export renders the persisted include graph for external tools.
package export

import (
	"fmt"
	"sort"
	"strings"

	"cdep/internal/graph"
	"cdep/internal/hashing"
	"cdep/internal/paths"
)

// DefaultDotFile is the default output filename for DOT exports.
const DefaultDotFile = "dep-graph.dot"

// WriteDot renders the graph as Graphviz DOT with includees in the left
// column and their includers on the right. Translation units draw as
// ellipses, headers as boxes. Nodes and edges are emitted in sorted
// order so exports are reproducible.
func WriteDot(idx *graph.Index, projectRoot string) string {
	includees := make([]string, 0, len(idx.Rev))
	includerSet := make(map[string]bool)
	for includee, who := range idx.Rev {
		includees = append(includees, includee)
		for _, w := range who {
			includerSet[w] = true
		}
	}
	sort.Strings(includees)

	includers := make([]string, 0, len(includerSet))
	for w := range includerSet {
		includers = append(includers, w)
	}
	sort.Strings(includers)

	var b strings.Builder
	b.WriteString("digraph Includes {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  graph [splines=true, concentrate=true];\n")
	b.WriteString("  node  [fontname=\"Helvetica\", fontsize=10, style=filled];\n")
	b.WriteString("  edge  [arrowhead=vee];\n")

	b.WriteString("  { rank=source;\n")
	for _, n := range includees {
		writeNode(&b, n, projectRoot)
	}
	b.WriteString("  }\n")

	b.WriteString("  { rank=sink;\n")
	for _, n := range includers {
		writeNode(&b, n, projectRoot)
	}
	b.WriteString("  }\n")

	for _, includee := range includees {
		from := esc(rel(includee, projectRoot))
		who := append([]string(nil), idx.Rev[includee]...)
		sort.Strings(who)
		for _, includer := range who {
			fmt.Fprintf(&b, "  \"%s\" -> \"%s\";\n", from, esc(rel(includer, projectRoot)))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func writeNode(b *strings.Builder, node, projectRoot string) {
	shape, fill := "box", "#fff7e6"
	if hashing.IsTranslationUnit(node) {
		shape, fill = "ellipse", "#e8f0fe"
	}
	fmt.Fprintf(b, "    \"%s\" [shape=%s, fillcolor=\"%s\"];\n", esc(rel(node, projectRoot)), shape, fill)
}

func rel(p, root string) string {
	if root != "" && paths.IsUnder(p, root) {
		return strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
	}
	return p
}

func esc(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
