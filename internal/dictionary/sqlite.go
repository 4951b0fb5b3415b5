// internal/dictionary/sqlite.go
//
// SQLite persistence for word lists.
//   - Migrate applies the embedded sql/*.sql files once each (tracked in _migrations).
//   - Import writes a Store into the words table, replacing existing lists.
//   - Load rebuilds a Store from the words table.

package dictionary

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// ErrEmpty is returned by Load when the database holds no words.
var ErrEmpty = errors.New("dictionary: no words in database")

// Migrate applies the embedded schema migrations in lexical order, each in
// its own transaction.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Import writes every list of s into db. Lists already present under the
// same key are replaced; other keys are left alone.
func Import(ctx context.Context, db *sql.DB, s *Store) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (list, position, word) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	n := 0
	for _, key := range s.Keys() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM words WHERE list=?`, key); err != nil {
			return 0, fmt.Errorf("clear %s: %w", key, err)
		}
		for i, w := range s.Words(key) {
			if _, err := stmt.ExecContext(ctx, key, i, w); err != nil {
				return 0, fmt.Errorf("insert %s[%d]: %w", key, i, err)
			}
			n++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// Load reads all lists from db, preserving stored order and case.
func Load(ctx context.Context, db *sql.DB) (*Store, error) {
	rows, err := db.QueryContext(ctx, `SELECT list, word FROM words ORDER BY list, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := make(map[string][]string)
	for rows.Next() {
		var key, word string
		if err := rows.Scan(&key, &word); err != nil {
			return nil, err
		}
		lists[key] = append(lists[key], word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, ErrEmpty
	}
	return &Store{lists: lists}, nil
}
