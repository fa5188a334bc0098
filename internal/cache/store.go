package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one cached translation result.
type Entry struct {
	Translations         map[string]string
	DetectedSource       string
	PastForms            string
	GermanNounArticle    string
	GermanVerbGovernance string
	CreatedAt            time.Time
}

// Store persists translation results in a local SQLite database. It is
// safe for concurrent use.
type Store struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

const schema = `
CREATE TABLE IF NOT EXISTS translation_cache (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	targets TEXT NOT NULL,
	input_text TEXT NOT NULL,
	detected_source TEXT NOT NULL DEFAULT '',
	translations TEXT NOT NULL,
	past_forms TEXT NOT NULL DEFAULT '',
	noun_article TEXT NOT NULL DEFAULT '',
	verb_governance TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	UNIQUE(source, targets, input_text)
);
`

// Open opens the database at path, creating the file, its parent
// directory, and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON;",
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA cache_size = -16000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply pragma %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}
	return &Store{db: db, sq: sq.StatementBuilder}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the entry stored under key, or nil when the key has never
// been written.
func (s *Store) Get(ctx context.Context, key Key) (*Entry, error) {
	query := s.sq.Select(
		"translations",
		"detected_source",
		"past_forms",
		"noun_article",
		"verb_governance",
		"created_at",
	).
		From("translation_cache").
		Where(sq.Eq{
			"source":     key.Source,
			"targets":    key.targetList(),
			"input_text": key.Text,
		}).
		Limit(1)
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build cache query: %w", err)
	}

	var (
		entry        Entry
		translations string
		created      string
	)
	row := s.db.QueryRowContext(ctx, sqlStr, args...)
	if err := row.Scan(
		&translations,
		&entry.DetectedSource,
		&entry.PastForms,
		&entry.GermanNounArticle,
		&entry.GermanVerbGovernance,
		&created,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}
	if err := json.Unmarshal([]byte(translations), &entry.Translations); err != nil {
		return nil, fmt.Errorf("failed to decode cached translations: %w", err)
	}
	entry.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &entry, nil
}

// Put stores entry under key. Concurrent writers for the same key race
// benignly: content is deterministic for a given input, so the last
// writer wins without changing the result.
func (s *Store) Put(ctx context.Context, key Key, entry *Entry) error {
	translations, err := json.Marshal(entry.Translations)
	if err != nil {
		return fmt.Errorf("failed to encode translations: %w", err)
	}
	created := entry.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	query := s.sq.
		Insert("translation_cache").
		Columns(
			"source",
			"targets",
			"input_text",
			"detected_source",
			"translations",
			"past_forms",
			"noun_article",
			"verb_governance",
			"created_at",
		).
		Values(
			key.Source,
			key.targetList(),
			key.Text,
			entry.DetectedSource,
			string(translations),
			entry.PastForms,
			entry.GermanNounArticle,
			entry.GermanVerbGovernance,
			created.Format(time.RFC3339),
		).
		Suffix(`ON CONFLICT(source, targets, input_text) DO UPDATE SET
			detected_source = excluded.detected_source,
			translations = excluded.translations,
			past_forms = excluded.past_forms,
			noun_article = excluded.noun_article,
			verb_governance = excluded.verb_governance`)
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build cache insert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
