package history

import (
	"io"
	"testing"
	"time"

	"cdep/internal/logging"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	logger := logging.NewLogger(logging.Config{
		Level:  logging.ErrorLevel,
		Format: logging.HumanFormat,
		Output: io.Discard,
	})
	db, err := Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLastScanEmpty(t *testing.T) {
	db := openTestDB(t)
	last, err := db.LastScan()
	if err != nil {
		t.Fatalf("LastScan: %v", err)
	}
	if last != nil {
		t.Errorf("expected nil on an empty database, got %+v", last)
	}
}

func TestRecordAndLastScan(t *testing.T) {
	db := openTestDB(t)

	rec := NewScanRecord()
	rec.FinishedAt = rec.StartedAt.Add(2 * time.Second)
	rec.Roots = 1
	rec.Files = 42
	rec.Edges = 57
	rec.Unresolved = 3
	rec.Skipped = 1
	if err := db.RecordScan(rec); err != nil {
		t.Fatalf("RecordScan: %v", err)
	}

	got, err := db.LastScan()
	if err != nil {
		t.Fatalf("LastScan: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record")
	}
	if got.ID != rec.ID {
		t.Errorf("id: expected %s, got %s", rec.ID, got.ID)
	}
	if got.Files != 42 || got.Edges != 57 || got.Unresolved != 3 || got.Skipped != 1 {
		t.Errorf("counters did not round-trip: %+v", got)
	}
	if got.FinishedAt.Unix() != rec.FinishedAt.Unix() {
		t.Errorf("finished_at: expected %d, got %d", rec.FinishedAt.Unix(), got.FinishedAt.Unix())
	}
}

func TestListScansNewestFirst(t *testing.T) {
	db := openTestDB(t)

	base := time.Now()
	for i := 0; i < 3; i++ {
		rec := NewScanRecord()
		rec.StartedAt = base.Add(time.Duration(i) * time.Minute)
		rec.FinishedAt = rec.StartedAt.Add(time.Second)
		rec.Files = i
		if err := db.RecordScan(rec); err != nil {
			t.Fatalf("RecordScan: %v", err)
		}
	}

	records, err := db.ListScans(2)
	if err != nil {
		t.Fatalf("ListScans: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Files != 2 || records[1].Files != 1 {
		t.Errorf("expected newest first, got files %d, %d", records[0].Files, records[1].Files)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	logger := logging.NewLogger(logging.Config{
		Level:  logging.ErrorLevel,
		Format: logging.HumanFormat,
		Output: io.Discard,
	})
	wd := t.TempDir()

	db1, err := Open(wd, logger)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	rec := NewScanRecord()
	rec.FinishedAt = rec.StartedAt
	if err := db1.RecordScan(rec); err != nil {
		t.Fatalf("RecordScan: %v", err)
	}
	db1.Close()

	db2, err := Open(wd, logger)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer db2.Close()

	last, err := db2.LastScan()
	if err != nil {
		t.Fatalf("LastScan: %v", err)
	}
	if last == nil || last.ID != rec.ID {
		t.Errorf("expected the recorded scan to survive reopening, got %+v", last)
	}
}
