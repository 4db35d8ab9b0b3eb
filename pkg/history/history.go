// Package history keeps a local record of copy operations in SQLite so
// users can see what recently went through the clipboard.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultTTL is how long entries survive before pruning.
const DefaultTTL = 7 * 24 * time.Hour

// Entry is one recorded copy. Payload bytes are never stored, only the
// kind, size and a short preview.
type Entry struct {
	ID        int64
	Kind      string
	Size      int
	Preview   string
	CreatedAt time.Time
}

// Manager owns the history database.
type Manager struct {
	db  *sql.DB
	ttl time.Duration
}

// NewManager opens (or creates) the history database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	return NewManagerWithTTL(dbPath, DefaultTTL)
}

func NewManagerWithTTL(dbPath string, ttl time.Duration) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	m := &Manager{db: db, ttl: ttl}
	if err := m.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return m, nil
}

func (m *Manager) init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS copies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			size INTEGER NOT NULL,
			preview TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_copies_created_at ON copies(created_at)`,
	}
	for _, query := range queries {
		if _, err := m.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// Record stores one copy operation and prunes expired entries. It
// implements the adapter's Recorder interface.
func (m *Manager) Record(kind string, size int, preview string) error {
	if _, err := m.db.Exec(
		`INSERT INTO copies (kind, size, preview) VALUES (?, ?, ?)`,
		kind, size, preview,
	); err != nil {
		return fmt.Errorf("failed to record copy: %w", err)
	}
	return m.Prune()
}

// Recent returns up to n entries, newest first.
func (m *Manager) Recent(n int) ([]Entry, error) {
	rows, err := m.db.Query(
		`SELECT id, kind, size, preview, created_at
		 FROM copies ORDER BY created_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var preview sql.NullString
		if err := rows.Scan(&e.ID, &e.Kind, &e.Size, &preview, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Preview = preview.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes entries older than the TTL.
func (m *Manager) Prune() error {
	query := fmt.Sprintf(
		`DELETE FROM copies WHERE datetime(created_at) < datetime('now', '-%d seconds')`,
		int(m.ttl.Seconds()))
	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Clear removes all entries.
func (m *Manager) Clear() error {
	if _, err := m.db.Exec(`DELETE FROM copies`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
