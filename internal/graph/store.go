package graph

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"cdep/internal/config"
	cdeperrors "cdep/internal/errors"
)

const (
	indexFile           = "index.json"
	indexFileCompressed = "index.json.zst"
)

// zstd frame magic, used to detect compressed artifacts on load.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// IndexPath returns the artifact path under workDir's .cdep directory.
func IndexPath(workDir string, compressed bool) string {
	name := indexFile
	if compressed {
		name = indexFileCompressed
	}
	return filepath.Join(workDir, config.ConfigDir, name)
}

// Save writes the whole index to path atomically (temp file + rename).
// The index is normalized first so repeated scans of an unchanged tree
// produce byte-identical artifacts. With compress set, the JSON payload
// is wrapped in a zstd frame.
func Save(idx *Index, path string, compress bool) error {
	idx.normalize()

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}
	data = append(data, '\n')

	if compress {
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
		if _, err := enc.Write(data); err != nil {
			enc.Close()
			return fmt.Errorf("compressing index: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("compressing index: %w", err)
		}
		data = buf.Bytes()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing index: %w", err)
	}

	// There is exactly one current artifact. A leftover variant from a
	// scan with the opposite compression setting would shadow (or be
	// shadowed by) this one on load, so it is removed.
	counterpart := path + ".zst"
	if strings.HasSuffix(path, ".zst") {
		counterpart = strings.TrimSuffix(path, ".zst")
	}
	if err := os.Remove(counterpart); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale index: %w", err)
	}
	return nil
}

// Load reads an index artifact, transparently decompressing zstd frames.
// A missing artifact maps to INDEX_MISSING; anything structurally
// unreadable (bad frame, bad JSON, version mismatch) maps to
// INDEX_CORRUPT. Both are fatal to the caller's operation.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cdeperrors.New(cdeperrors.IndexMissing,
				fmt.Sprintf("no index found at %s", path), err)
		}
		return nil, cdeperrors.New(cdeperrors.IndexCorrupt,
			fmt.Sprintf("reading index at %s", path), err)
	}

	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, cdeperrors.New(cdeperrors.InternalError, "creating zstd reader", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, cdeperrors.New(cdeperrors.IndexCorrupt,
				fmt.Sprintf("decompressing index at %s", path), err)
		}
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, cdeperrors.New(cdeperrors.IndexCorrupt,
			fmt.Sprintf("parsing index at %s", path), err)
	}
	if idx.Version != IndexVersion {
		return nil, cdeperrors.New(cdeperrors.IndexCorrupt,
			fmt.Sprintf("index version %d is not supported (want %d)", idx.Version, IndexVersion), nil)
	}
	if idx.Hash == nil {
		idx.Hash = make(map[string]string)
	}
	if idx.Edges == nil {
		idx.Edges = make(map[string][]string)
	}
	if idx.Rev == nil {
		idx.Rev = make(map[string][]string)
	}
	return &idx, nil
}

// LoadAny tries the uncompressed artifact first, then the compressed
// one, under workDir's .cdep directory. A compressed artifact that
// exists but fails to load reports its own error, not INDEX_MISSING.
func LoadAny(workDir string) (*Index, error) {
	idx, err := Load(IndexPath(workDir, false))
	if err == nil {
		return idx, nil
	}
	var ce *cdeperrors.CdepError
	if stderrors.As(err, &ce) && ce.Code == cdeperrors.IndexMissing {
		idx, zerr := Load(IndexPath(workDir, true))
		if zerr == nil {
			return idx, nil
		}
		var zce *cdeperrors.CdepError
		if stderrors.As(zerr, &zce) && zce.Code != cdeperrors.IndexMissing {
			return nil, zerr
		}
	}
	return nil, err
}
