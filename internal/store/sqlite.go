package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pbaille/tidybrain/internal/domain"
)

//go:embed schema.sql
var schema string

// Journal records every routed write in a SQLite database, labelled with
// the stream it was routed to
type Journal struct {
	db *sql.DB
}

// OpenJournal opens (or creates) the journal database at dbPath
func OpenJournal(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record inserts one entry for the given destination and returns its row id
func (j *Journal) Record(kind, stream string, e domain.Entry) (string, error) {
	id := uuid.New().String()

	_, err := j.db.Exec(
		"INSERT INTO entries (id, kind, stream, project, section, content, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, kind, stream, nullable(e.Context.Project), nullable(e.Context.Section), e.Content, e.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert entry: %w", err)
	}
	return id, nil
}

// Count returns how many entries were recorded for a destination
func (j *Journal) Count(kind, stream string) (int, error) {
	var n int
	err := j.db.QueryRow(
		"SELECT COUNT(*) FROM entries WHERE kind = ? AND stream = ?",
		kind, stream,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Sink binds the journal to one destination
func (j *Journal) Sink(kind, stream string) *JournalSink {
	return &JournalSink{journal: j, kind: kind, stream: stream}
}

// JournalSink writes entries into a Journal under a fixed destination
type JournalSink struct {
	journal *Journal
	kind    string
	stream  string
}

func (s *JournalSink) Write(e domain.Entry) error {
	_, err := s.journal.Record(s.kind, s.stream, e)
	return err
}

func (s *JournalSink) String() string {
	return "journal:" + s.kind + "/" + s.stream
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
