package lang

import (
	"os"
	"path/filepath"
	"testing"

	"cdep/internal/paths"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return paths.Canonicalize(path)
}

func TestHeaderRootsAddsIncludeSubdir(t *testing.T) {
	root := paths.Canonicalize(t.TempDir())
	if err := os.MkdirAll(filepath.Join(root, "include"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	hr := HeaderRoots([]string{root})
	if len(hr) != 2 {
		t.Fatalf("expected 2 header roots, got %d: %v", len(hr), hr)
	}
	if hr[0] != root || hr[1] != filepath.Join(root, "include") {
		t.Errorf("unexpected header roots: %v", hr)
	}
}

func TestHeaderRootsWithoutIncludeSubdir(t *testing.T) {
	root := paths.Canonicalize(t.TempDir())
	hr := HeaderRoots([]string{root})
	if len(hr) != 1 || hr[0] != root {
		t.Errorf("expected just the root, got %v", hr)
	}
}

func TestResolveRelativeToIncludingFile(t *testing.T) {
	root := paths.Canonicalize(t.TempDir())
	src := writeFile(t, filepath.Join(root, "src", "main.c"), "")
	hdr := writeFile(t, filepath.Join(root, "src", "util.h"), "")

	got, ok := Resolve(src, Include{Kind: Quoted, Path: "util.h"}, []string{root})
	if !ok {
		t.Fatal("expected include to resolve")
	}
	if got != hdr {
		t.Errorf("expected %s, got %s", hdr, got)
	}
}

func TestResolveRelativeWinsOverRoot(t *testing.T) {
	root := paths.Canonicalize(t.TempDir())
	src := writeFile(t, filepath.Join(root, "src", "main.c"), "")
	local := writeFile(t, filepath.Join(root, "src", "util.h"), "// local")
	writeFile(t, filepath.Join(root, "util.h"), "// top-level")

	got, ok := Resolve(src, Include{Kind: Quoted, Path: "util.h"}, []string{root})
	if !ok || got != local {
		t.Errorf("expected sibling header %s to win, got %s (ok=%v)", local, got, ok)
	}
}

func TestResolveFallsBackToHeaderRoots(t *testing.T) {
	root := paths.Canonicalize(t.TempDir())
	src := writeFile(t, filepath.Join(root, "src", "main.c"), "")
	hdr := writeFile(t, filepath.Join(root, "include", "util.h"), "")

	hr := HeaderRoots([]string{root})
	got, ok := Resolve(src, Include{Kind: Quoted, Path: "util.h"}, hr)
	if !ok || got != hdr {
		t.Errorf("expected %s from include subdir, got %s (ok=%v)", hdr, got, ok)
	}
}

func TestResolveAngledNeverResolves(t *testing.T) {
	root := paths.Canonicalize(t.TempDir())
	src := writeFile(t, filepath.Join(root, "main.c"), "")
	writeFile(t, filepath.Join(root, "stdio.h"), "")

	if _, ok := Resolve(src, Include{Kind: Angled, Path: "stdio.h"}, []string{root}); ok {
		t.Error("angled includes must never resolve")
	}
}

func TestResolveRejectsEscapeFromRoots(t *testing.T) {
	outer := paths.Canonicalize(t.TempDir())
	root := filepath.Join(outer, "project")
	src := writeFile(t, filepath.Join(root, "main.c"), "")
	writeFile(t, filepath.Join(outer, "secret.h"), "")

	inc := Include{Kind: Quoted, Path: filepath.Join("..", "secret.h")}
	if got, ok := Resolve(src, inc, []string{root}); ok {
		t.Errorf("expected out-of-root include to be rejected, got %s", got)
	}
}

func TestResolveMissingFile(t *testing.T) {
	root := paths.Canonicalize(t.TempDir())
	src := writeFile(t, filepath.Join(root, "main.c"), "")

	if _, ok := Resolve(src, Include{Kind: Quoted, Path: "nope.h"}, []string{root}); ok {
		t.Error("expected nonexistent include to stay unresolved")
	}
}

func TestResolveDirectoryIsNotAFile(t *testing.T) {
	root := paths.Canonicalize(t.TempDir())
	src := writeFile(t, filepath.Join(root, "main.c"), "")
	if err := os.MkdirAll(filepath.Join(root, "util.h"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, ok := Resolve(src, Include{Kind: Quoted, Path: "util.h"}, []string{root}); ok {
		t.Error("a directory must not satisfy an include")
	}
}
