package lang

import (
	"strings"
)

// IncludeKind classifies an include token.
type IncludeKind int

const (
	// Quoted is a `#include "..."` directive.
	Quoted IncludeKind = iota
	// Angled is a `#include <...>` directive, treated as system/external.
	Angled
)

// Include is a single parsed #include directive.
type Include struct {
	Kind IncludeKind
	Path string
}

// ParseIncludes extracts #include directives from comment-stripped
// source, in source order.
//
// A directive line starts with optional blanks, '#', optional blanks,
// and the word "include"; the first "..." or <...> token on the line is
// taken. Backslash-continued lines are not joined, so a directive split
// across lines is missed. Lines that do not match are ignored.
func ParseIncludes(src []byte) []Include {
	var includes []Include
	for _, line := range strings.SplitAfter(string(src), "\n") {
		rest, ok := directiveRest(line)
		if !ok {
			continue
		}
		if inc, ok := firstToken(rest); ok {
			includes = append(includes, inc)
		}
	}
	return includes
}

// directiveRest returns the text following the "include" directive word,
// or false if the line is not an include directive.
func directiveRest(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	rest := strings.TrimLeft(trimmed[1:], " \t")
	if !strings.HasPrefix(rest, "include") {
		return "", false
	}
	rest = rest[len("include"):]
	// The directive word must be exactly "include": reject e.g. "includex".
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '"' && rest[0] != '<' {
		return "", false
	}
	return rest, true
}

// firstToken extracts the first quoted or angle-delimited token in rest,
// whichever opens earlier.
func firstToken(rest string) (Include, bool) {
	q := strings.IndexByte(rest, '"')
	a := strings.IndexByte(rest, '<')

	if q >= 0 && (a < 0 || q < a) {
		if end := strings.IndexByte(rest[q+1:], '"'); end >= 0 {
			return Include{Kind: Quoted, Path: rest[q+1 : q+1+end]}, true
		}
		return Include{}, false
	}
	if a >= 0 {
		if end := strings.IndexByte(rest[a+1:], '>'); end >= 0 {
			return Include{Kind: Angled, Path: rest[a+1 : a+1+end]}, true
		}
	}
	return Include{}, false
}
