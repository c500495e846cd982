// Package journal keeps an append-only sqlite log of completed drag
// gestures: the decisions, never the list contents themselves.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jask/dragboard/drag"
)

// Entry is one recorded gesture.
type Entry struct {
	ID            int64
	At            time.Time
	Kind          string // "reorder" or "transfer"
	FromContainer string
	FromIndex     int
	ToContainer   string
	ToIndex       int
	CardTitle     string
}

// Journal wraps the sqlite handle.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database at path and
// applies pending migrations.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir journal dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// WithTx runs fn in a transaction.
func (j *Journal) WithTx(fn func(tx *sql.Tx) error) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Now returns UTC time truncated to seconds (consistent with SQLite
// default).
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Record appends one completed decision. A nil decision records
// nothing; a nil journal is a no-op so callers can leave the journal
// unconfigured.
func (j *Journal) Record(d drag.Decision, cardTitle string) error {
	if j == nil || d == nil {
		return nil
	}
	var e Entry
	switch d := d.(type) {
	case drag.SameContainer:
		e = Entry{
			Kind:          "reorder",
			FromContainer: d.Container,
			FromIndex:     d.From,
			ToContainer:   d.Container,
			ToIndex:       d.To,
		}
	case drag.CrossContainer:
		e = Entry{
			Kind:          "transfer",
			FromContainer: d.FromContainer,
			FromIndex:     d.FromIndex,
			ToContainer:   d.ToContainer,
			ToIndex:       d.ToIndex,
		}
	default:
		return nil
	}
	e.At = Now()
	e.CardTitle = cardTitle

	return j.WithTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO gestures (at, kind, from_container, from_idx, to_container, to_idx, card_title)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.At.Format(time.RFC3339), e.Kind, e.FromContainer, e.FromIndex, e.ToContainer, e.ToIndex, e.CardTitle,
		)
		if err != nil {
			return fmt.Errorf("insert gesture: %w", err)
		}
		return nil
	})
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	if j == nil {
		return nil, nil
	}
	rows, err := j.db.Query(`
		SELECT id, at, kind, from_container, from_idx, to_container, to_idx, card_title
		FROM gestures ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query gestures: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Kind, &e.FromContainer, &e.FromIndex, &e.ToContainer, &e.ToIndex, &e.CardTitle); err != nil {
			return nil, fmt.Errorf("scan gesture: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, at); err == nil {
			e.At = ts
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
