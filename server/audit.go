package server

import (
	"database/sql"
	"fmt"
	"time"
)

// auditLog records one row per /scan request: when it happened, how many
// bytes of source text were scanned, and how many tokens came out. A
// single append-only table; an audit log has no updates or deletes.
type auditLog struct {
	db *sql.DB
}

func newAuditLog(db *sql.DB) (*auditLog, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS scan_audit (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		requested_at INTEGER NOT NULL,
		key_id TEXT NOT NULL,
		byte_count INTEGER NOT NULL,
		token_count INTEGER NOT NULL
	);`)
	if err != nil {
		return nil, fmt.Errorf("creating scan_audit table: %w", err)
	}
	return &auditLog{db: db}, nil
}

// Record inserts one audit row for a completed scan request.
func (a *auditLog) Record(keyID string, byteCount, tokenCount int) error {
	_, err := a.db.Exec(
		`INSERT INTO scan_audit (requested_at, key_id, byte_count, token_count) VALUES (?, ?, ?, ?)`,
		time.Now().Unix(), keyID, byteCount, tokenCount,
	)
	return err
}
