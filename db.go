// db.go
//
// Database helpers for the dictionary.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Choosing the dictionary source: DICTIONARY_DB when set, else the bundled lists.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordl/internal/dictionary"
)

// openDB opens (and creates if missing) a SQLite database file and applies
// the dictionary schema.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/words.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := dictionary.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// loadDictionary reads the word lists from dsn, or from the bundled assets
// when dsn is empty.
func loadDictionary(ctx context.Context, dsn string) (*dictionary.Store, error) {
	if dsn == "" {
		return dictionary.FromAssets()
	}
	db, err := openDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	dict, err := dictionary.Load(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load dictionary from %s: %w", dsn, err)
	}
	log.Info().Str("db", dsn).Int("words", dict.Len()).Msg("dictionary loaded")
	return dict, nil
}

// importDictionary copies the bundled word lists into dsn.
func importDictionary(ctx context.Context, dsn string) (int, error) {
	dict, err := dictionary.FromAssets()
	if err != nil {
		return 0, err
	}
	db, err := openDB(ctx, dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	return dictionary.Import(ctx, db, dict)
}
