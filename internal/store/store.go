// Package store keeps a catalog of raw listings in SQLite so the viewer can
// run without the original JSON export.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: creating DB dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening DB: %w", err)
	}

	store := NewStore(db)
	if err := store.Init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Init(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			position INTEGER PRIMARY KEY,
			id TEXT,
			title TEXT,
			original TEXT,
			director TEXT,
			year_production TEXT,
			screening_when TEXT,
			genres TEXT,
			languages TEXT,
			duration TEXT,
			link TEXT,
			image TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS imports (
			import_id INTEGER PRIMARY KEY AUTOINCREMENT,
			imported_at TEXT NOT NULL,
			source TEXT NOT NULL,
			record_count INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: init schema: %w", err)
		}
	}
	return nil
}

// ReplaceRecords swaps the stored catalog for raws in one transaction.
// Source order is kept.
func (s *Store) ReplaceRecords(ctx context.Context, source string, raws []catalog.RawRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM movies`); err != nil {
		return fmt.Errorf("store: clear movies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO movies (
			position, id, title, original, director, year_production, screening_when,
			genres, languages, duration, link, image
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("store: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, raw := range raws {
		if _, err := stmt.ExecContext(ctx,
			i,
			nullable(raw.ID),
			nullable(raw.Title),
			nullable(raw.Original),
			nullable(raw.Director),
			nullable(raw.YearProduction),
			nullable(raw.When),
			nullable(raw.Genres),
			nullable(raw.Languages),
			nullable(raw.Duration),
			nullable(raw.Link),
			nullable(raw.Image),
		); err != nil {
			return fmt.Errorf("store: insert movie %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (imported_at, source, record_count) VALUES (?, ?, ?)`,
		s.now().UTC().Format(time.RFC3339Nano), source, len(raws),
	); err != nil {
		return fmt.Errorf("store: record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit tx: %w", err)
	}
	return nil
}

// RawRecords returns the stored catalog in source order.
func (s *Store) RawRecords(ctx context.Context) ([]catalog.RawRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, original, director, year_production, screening_when,
			genres, languages, duration, link, image
		FROM movies ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("store: query movies: %w", err)
	}
	defer rows.Close()

	var out []catalog.RawRecord
	for rows.Next() {
		var cols [11]sql.NullString
		dest := make([]any, len(cols))
		for i := range cols {
			dest[i] = &cols[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("store: scan movie: %w", err)
		}
		out = append(out, catalog.RawRecord{
			ID:             field(cols[0]),
			Title:          field(cols[1]),
			Original:       field(cols[2]),
			Director:       field(cols[3]),
			YearProduction: field(cols[4]),
			When:           field(cols[5]),
			Genres:         field(cols[6]),
			Languages:      field(cols[7]),
			Duration:       field(cols[8]),
			Link:           field(cols[9]),
			Image:          field(cols[10]),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate movies: %w", err)
	}
	return out, nil
}

// Import describes the most recent ReplaceRecords call.
type Import struct {
	ImportedAt time.Time
	Source     string
	Records    int
}

// LastImport returns the latest import, or ok=false if the store is empty.
func (s *Store) LastImport(ctx context.Context) (Import, bool, error) {
	var (
		at  string
		imp Import
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT imported_at, source, record_count FROM imports ORDER BY import_id DESC LIMIT 1
	`).Scan(&at, &imp.Source, &imp.Records)
	if err == sql.ErrNoRows {
		return Import{}, false, nil
	}
	if err != nil {
		return Import{}, false, fmt.Errorf("store: query imports: %w", err)
	}
	imp.ImportedAt, _ = time.Parse(time.RFC3339Nano, at)
	return imp, true, nil
}

func nullable(f catalog.Field) any {
	if !f.IsSet() {
		return nil
	}
	return f.String()
}

func field(ns sql.NullString) catalog.Field {
	if !ns.Valid {
		return catalog.Field{}
	}
	return catalog.F(ns.String)
}
