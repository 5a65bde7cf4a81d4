package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: WarnLevel, Format: HumanFormat, Output: &buf})

	logger.Debug("too quiet", nil)
	logger.Info("still too quiet", nil)
	logger.Warn("audible", nil)
	logger.Error("loud", nil)

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("messages below the threshold must be dropped:\n%s", out)
	}
	if !strings.Contains(out, "audible") || !strings.Contains(out, "loud") {
		t.Errorf("warn and error must pass a warn threshold:\n%s", out)
	}
}

func TestHumanFormatIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: InfoLevel, Format: HumanFormat, Output: &buf})

	logger.Info("scan complete", map[string]interface{}{"files": 12})

	out := buf.String()
	if !strings.Contains(out, "[info] scan complete") {
		t.Errorf("unexpected human output:\n%s", out)
	}
	if !strings.Contains(out, "files=12") {
		t.Errorf("fields missing from human output:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: InfoLevel, Format: JSONFormat, Output: &buf})

	logger.Warn("unresolved include", map[string]interface{}{"file": "/p/a.c"})

	var entry struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if entry.Level != "warn" || entry.Message != "unresolved include" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Fields["file"] != "/p/a.c" {
		t.Errorf("fields did not survive: %+v", entry.Fields)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != DebugLevel {
		t.Error("debug should parse")
	}
	if ParseLevel("nonsense") != InfoLevel {
		t.Error("unknown levels should default to info")
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != JSONFormat {
		t.Error("json should parse")
	}
	if ParseFormat("fancy") != HumanFormat {
		t.Error("unknown formats should default to human")
	}
}
