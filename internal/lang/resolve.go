package lang

import (
	"os"
	"path/filepath"

	"cdep/internal/paths"
)

// HeaderRoots expands scanned roots into the list of directories quoted
// includes may resolve under: each root, immediately followed by its
// "include" subdirectory when that exists. Enumeration order is fixed by
// the order of the input roots.
func HeaderRoots(roots []string) []string {
	var hr []string
	for _, root := range roots {
		canon := paths.Canonicalize(root)
		hr = append(hr, canon)
		inc := filepath.Join(canon, "include")
		if info, err := os.Stat(inc); err == nil && info.IsDir() {
			hr = append(hr, paths.Canonicalize(inc))
		}
	}
	return hr
}

// Resolve maps an include token to a concrete file under the header
// roots. Angled includes never resolve. Quoted includes are tried first
// relative to the including file's directory, then joined to each header
// root in order; a candidate is accepted if it exists on disk and lies
// under at least one header root. A false result is a legitimate
// outcome (the include points outside tracked scope), not an error.
func Resolve(includingFile string, inc Include, headerRoots []string) (string, bool) {
	if inc.Kind == Angled {
		return "", false
	}

	if p, ok := accept(filepath.Join(paths.Dir(includingFile), inc.Path), headerRoots); ok {
		return p, true
	}
	for _, root := range headerRoots {
		if p, ok := accept(filepath.Join(root, inc.Path), headerRoots); ok {
			return p, true
		}
	}
	return "", false
}

func accept(candidate string, headerRoots []string) (string, bool) {
	canon := paths.Canonicalize(candidate)
	info, err := os.Stat(canon)
	if err != nil || info.IsDir() {
		return "", false
	}
	for _, root := range headerRoots {
		if paths.IsUnder(canon, root) {
			return canon, true
		}
	}
	return "", false
}
