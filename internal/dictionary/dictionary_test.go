package dictionary

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	lists := map[string][]string{English: {"alpha", "beta"}}
	s := New(lists)

	lists[English][0] = "gamma"
	lists[British] = []string{"colour"}

	assert.Equal(t, []string{"alpha", "beta"}, s.Words(English))
	assert.Nil(t, s.Words(British))
	assert.Equal(t, 2, s.Len())
}

func TestTierKey(t *testing.T) {
	assert.Equal(t, "english/35", TierKey(English, 35))
	assert.Equal(t, "english/british/10", TierKey(British, 10))
}

func TestFromAssets(t *testing.T) {
	s, err := FromAssets()
	require.NoError(t, err)

	for _, d := range AllDialects {
		assert.NotEmpty(t, s.Words(d), d)
	}

	full := make(map[string]bool)
	for _, w := range s.Words(English) {
		full[w] = true
	}
	for _, tier := range Tiers {
		words := s.Words(TierKey(English, tier))
		require.NotEmpty(t, words, "tier %d", tier)
		for _, w := range words {
			assert.True(t, full[w], "tier %d word %q missing from %s", tier, w, English)
		}
	}

	assert.Contains(t, s.Words(English), "John")
	assert.NotContains(t, s.Words(English), "john")
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM _migrations`).Scan(&name))
	assert.Equal(t, "sql/001_words.sql", name)
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM words`).Scan(&n))
	assert.Zero(t, n)
}

func TestImportLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	src := New(map[string][]string{
		English:              {"zulu", "John", "alpha", ""},
		TierKey(English, 10): {"zulu", "alpha"},
		Canadian:             {"toque"},
	})
	n, err := Import(ctx, db, src)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	got, err := Load(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, src.Keys(), got.Keys())
	for _, k := range src.Keys() {
		assert.Equal(t, src.Words(k), got.Words(k), k)
	}
}

func TestImportReplacesList(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := Import(ctx, db, New(map[string][]string{English: {"one", "two", "three"}, British: {"colour"}}))
	require.NoError(t, err)
	_, err = Import(ctx, db, New(map[string][]string{English: {"four"}}))
	require.NoError(t, err)

	got, err := Load(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"four"}, got.Words(English))
	assert.Equal(t, []string{"colour"}, got.Words(British))
}

func TestLoadEmpty(t *testing.T) {
	db := openTestDB(t)
	_, err := Load(context.Background(), db)
	require.ErrorIs(t, err, ErrEmpty)
}
