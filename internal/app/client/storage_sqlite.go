package client

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Blank import registers the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"

	"rolodex/internal/domain/contact"
)

// ErrNotCached reports that a contact is not in the local cache.
var ErrNotCached = errors.New("contact not cached")

// SQLiteCache keeps a local copy of contacts fetched from the server so
// the CLI can answer reads while offline. It is a cache, not a replica:
// the server stays the source of truth.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	cache := &SQLiteCache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache tables: %w", err)
	}

	return cache, nil
}

func (s *SQLiteCache) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			id         INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			age        INTEGER NOT NULL,
			email      TEXT NOT NULL,
			notes      TEXT NOT NULL DEFAULT '',
			group_id   INTEGER,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			fetched_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_contacts_name ON contacts(name);
	`)

	return err
}

// Put inserts or refreshes one cached contact.
func (s *SQLiteCache) Put(c contact.Response) error {
	_, err := s.db.Exec(`
		INSERT INTO contacts (id, name, age, email, notes, group_id, created_at, updated_at, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			email = excluded.email,
			notes = excluded.notes,
			group_id = excluded.group_id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			fetched_at = excluded.fetched_at
	`, c.ID, c.Name, c.Age, c.Email, c.Notes, c.GroupID, c.CreatedAt, c.UpdatedAt, time.Now())

	if err != nil {
		return fmt.Errorf("cache contact: %w", err)
	}
	return nil
}

// Get returns one cached contact, or ErrNotCached.
func (s *SQLiteCache) Get(id int64) (*contact.Response, error) {
	row := s.db.QueryRow(`
		SELECT id, name, age, email, notes, group_id, created_at, updated_at
		FROM contacts
		WHERE id = ?
	`, id)

	var c contact.Response
	err := row.Scan(&c.ID, &c.Name, &c.Age, &c.Email, &c.Notes, &c.GroupID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("read cached contact: %w", err)
	}

	return &c, nil
}

// List returns all cached contacts, most recently fetched first.
func (s *SQLiteCache) List() ([]contact.Response, error) {
	rows, err := s.db.Query(`
		SELECT id, name, age, email, notes, group_id, created_at, updated_at
		FROM contacts
		ORDER BY fetched_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list cached contacts: %w", err)
	}
	defer rows.Close()

	var contacts []contact.Response
	for rows.Next() {
		var c contact.Response
		if err := rows.Scan(&c.ID, &c.Name, &c.Age, &c.Email, &c.Notes, &c.GroupID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cached contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// Delete drops one contact from the cache. Deleting an uncached contact
// is not an error.
func (s *SQLiteCache) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM contacts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cached contact: %w", err)
	}
	return nil
}

func (s *SQLiteCache) Close() error {
	return s.db.Close()
}
