package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScanRecord is one completed scan.
type ScanRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Roots      int
	Files      int
	Edges      int
	Unresolved int
	Skipped    int
}

// NewScanRecord allocates a record with a fresh id.
func NewScanRecord() *ScanRecord {
	return &ScanRecord{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// RecordScan persists a completed scan.
func (db *DB) RecordScan(rec *ScanRecord) error {
	_, err := db.conn.Exec(`
		INSERT INTO scans (id, started_at, finished_at, roots, files, edges, unresolved, skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.StartedAt.Unix(), rec.FinishedAt.Unix(),
		rec.Roots, rec.Files, rec.Edges, rec.Unresolved, rec.Skipped)
	if err != nil {
		return fmt.Errorf("failed to record scan: %w", err)
	}
	return nil
}

// LastScan returns the most recent scan, or nil if none exist.
func (db *DB) LastScan() (*ScanRecord, error) {
	row := db.conn.QueryRow(`
		SELECT id, started_at, finished_at, roots, files, edges, unresolved, skipped
		FROM scans
		ORDER BY finished_at DESC, started_at DESC
		LIMIT 1
	`)

	rec, err := scanRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// ListScans returns up to limit scans, newest first.
func (db *DB) ListScans(limit int) ([]ScanRecord, error) {
	rows, err := db.conn.Query(`
		SELECT id, started_at, finished_at, roots, files, edges, unresolved, skipped
		FROM scans
		ORDER BY finished_at DESC, started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		rec, err := scanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func scanRow(scan func(dest ...any) error) (*ScanRecord, error) {
	var rec ScanRecord
	var started, finished int64
	if err := scan(&rec.ID, &started, &finished,
		&rec.Roots, &rec.Files, &rec.Edges, &rec.Unresolved, &rec.Skipped); err != nil {
		return nil, err
	}
	rec.StartedAt = time.Unix(started, 0)
	rec.FinishedAt = time.Unix(finished, 0)
	return &rec, nil
}
