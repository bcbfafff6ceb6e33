// Package store provides a SQLite-backed store for manuscript documents.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	name     TEXT PRIMARY KEY,
	content  TEXT NOT NULL,
	created  INTEGER NOT NULL,
	updated  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated);
`

// Document is a stored manuscript without its content.
type Document struct {
	Name    string
	Created time.Time
	Updated time.Time
}

type saveReq struct {
	name    string
	content string
	flush   chan struct{}
}

// Store is a SQLite-backed document store.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	saveCh chan saveReq
	done   chan struct{}
}

// Open creates or opens a document database at the given path.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{
		db:     db,
		saveCh: make(chan saveReq, 64),
		done:   make(chan struct{}),
	}
	go s.saveLoop()
	return s, nil
}

// Close drains pending autosaves and closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	close(s.saveCh)
	<-s.done
	return s.db.Close()
}

// Save writes content under name, replacing any earlier version.
func (s *Store) Save(name, content string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(name, content)
}

func (s *Store) write(name, content string) error {
	now := time.Now().Unix()
	_, err := s.db.Exec(
		`INSERT INTO documents (name, content, created, updated) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated = excluded.updated`,
		name, content, now, now,
	)
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}

// Load returns the content stored under name.
// Safe to call on a nil receiver (returns miss).
func (s *Store) Load(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var content string
	err := s.db.QueryRow("SELECT content FROM documents WHERE name = ?", name).Scan(&content)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Str("name", name).Msg("failed to load document")
		}
		return "", false
	}
	return content, true
}

// List returns every document, most recently updated first.
func (s *Store) List() ([]Document, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT name, created, updated FROM documents ORDER BY updated DESC, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var created, updated int64
		if err := rows.Scan(&d.Name, &created, &updated); err != nil {
			continue
		}
		d.Created = time.Unix(created, 0)
		d.Updated = time.Unix(updated, 0)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Delete removes the document stored under name.
func (s *Store) Delete(name string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM documents WHERE name = ?", name)
	return err
}
