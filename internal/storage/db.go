package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"catalogdiff/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  file1 TEXT NOT NULL,
  file2 TEXT NOT NULL,
  exclusionFile TEXT,
  currency TEXT NOT NULL,
  template1 TEXT,
  template2 TEXT,
  rows1 INTEGER NOT NULL DEFAULT 0,
  rows2 INTEGER NOT NULL DEFAULT 0,
  excluded INTEGER NOT NULL DEFAULT 0,
  newItems INTEGER NOT NULL DEFAULT 0,
  inactiveItems INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL,
  error TEXT,
  durationMs INTEGER NOT NULL DEFAULT 0,
  createdAt TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);
CREATE INDEX IF NOT EXISTS idx_runs_createdAt ON runs(createdAt);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(rec internal.RunRecord) error {
	_, err := d.conn.Exec(`
INSERT INTO runs (
  id, file1, file2, exclusionFile, currency, template1, template2,
  rows1, rows2, excluded, newItems, inactiveItems, status, error, durationMs
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		rec.ID, rec.File1, rec.File2, rec.ExclusionFile, rec.Currency, templateArg(rec.Template1), templateArg(rec.Template2),
		rec.Rows1, rec.Rows2, rec.Excluded, rec.NewItems, rec.InactiveItems, string(rec.Status), rec.Error, rec.DurationMs,
	)
	return err
}

const runColumns = `id, file1, file2, exclusionFile, currency, template1, template2,
  rows1, rows2, excluded, newItems, inactiveItems, status, error, durationMs, createdAt`

// ListRuns returns the most recent runs first.
func (d *DB) ListRuns(limit int) ([]internal.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(`SELECT `+runColumns+` FROM runs ORDER BY createdAt DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (d *DB) GetRun(id string) (*internal.RunRecord, error) {
	rec, err := scanRun(d.conn.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (internal.RunRecord, error) {
	var rec internal.RunRecord
	var status string
	var template1, template2 sql.NullString
	err := s.Scan(
		&rec.ID,
		&rec.File1,
		&rec.File2,
		&rec.ExclusionFile,
		&rec.Currency,
		&template1,
		&template2,
		&rec.Rows1,
		&rec.Rows2,
		&rec.Excluded,
		&rec.NewItems,
		&rec.InactiveItems,
		&status,
		&rec.Error,
		&rec.DurationMs,
		&rec.CreatedAt,
	)
	if err != nil {
		return internal.RunRecord{}, err
	}
	rec.Status = internal.RunStatus(status)
	rec.Template1 = templatePtr(template1)
	rec.Template2 = templatePtr(template2)
	return rec, nil
}

func templateArg(v *internal.TemplateName) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

func templatePtr(v sql.NullString) *internal.TemplateName {
	if !v.Valid {
		return nil
	}
	t := internal.TemplateName(v.String)
	return &t
}
