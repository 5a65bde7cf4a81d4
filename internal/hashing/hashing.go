// Package hashing produces content-normalized digests for tracked files.
//
// Header-like files are comment-stripped before digesting so that
// comment-only edits do not register as changes; translation units are
// digested byte-for-byte.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"cdep/internal/lang"
	"cdep/internal/paths"
)

// MissingDigest is the sentinel recorded for a file that cannot be read.
// It can never equal a real digest, so a deleted file always diffs as
// changed against any stored value.
const MissingDigest = "missing"

// headerExtensions is the fixed header-like classification set.
var headerExtensions = map[string]bool{
	"h":   true,
	"hh":  true,
	"hpp": true,
	"hxx": true,
	"inc": true,
}

// IsHeader reports whether the path is classified as header-like.
func IsHeader(path string) bool {
	return headerExtensions[paths.Ext(path)]
}

// IsTranslationUnit reports whether the path is a compilable source
// file, the unit of interest for recompilation.
func IsTranslationUnit(path string) bool {
	return paths.Ext(path) == "c"
}

// HashBytes digests already-read content, applying comment stripping for
// header-like paths. The digest is lowercase hex SHA-256.
func HashBytes(path string, data []byte) string {
	if IsHeader(path) {
		data = lang.Strip(data)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashFile reads and digests a file. Read failures (including "file no
// longer exists") are returned to the caller; whether that is an error
// or a change signal is the caller's decision.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return HashBytes(path, data), nil
}

// HashFileOrMissing digests a file, mapping any read failure to the
// MissingDigest sentinel. Used during impact analysis, where a vanished
// file is itself a valid change signal.
func HashFileOrMissing(path string) string {
	digest, err := HashFile(path)
	if err != nil {
		return MissingDigest
	}
	return digest
}
