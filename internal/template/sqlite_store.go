package template

import (
	"database/sql"
	"fmt"

	// sqlite driver for single-file template libraries
	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"
)

// SQLiteStore keeps the whole template library in a single SQLite file.
// Templates are stored as YAML bodies keyed by name, so the on-disk shape
// stays diffable with sqlite3 tooling.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite-backed store at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening template store: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// newSQLiteStoreWithDB wraps an existing connection; used by tests
func newSQLiteStoreWithDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS templates (
  name TEXT PRIMARY KEY,
  body TEXT NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("initializing template store: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the template stored under name
func (s *SQLiteStore) Get(name string) (*Template, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM templates WHERE name = ?`, name).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	var t Template
	if err := yaml.Unmarshal([]byte(body), &t); err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &t, nil
}

// Put stores a template under name, replacing any previous row
func (s *SQLiteStore) Put(name string, t *Template) error {
	body, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding template %s: %w", name, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO templates (name, body) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body`,
		name, string(body),
	)
	if err != nil {
		return fmt.Errorf("writing template %s: %w", name, err)
	}
	return nil
}

// List returns the stored template names in sorted order
func (s *SQLiteStore) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing templates: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the template stored under name
func (s *SQLiteStore) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM templates WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting template %s: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting template %s: %w", name, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
