// internal/dictionary/dictionary.go
//
// Read-only word lists keyed by dialect ("english", "english/british") and by
// dialect plus commonality tier ("english/35").
//
// A Store is built once (from the embedded assets, a SQLite database or a
// plain map in tests) and never mutated afterwards. Callers that need other
// contents build another Store.

package dictionary

import (
	"sort"
	"strconv"

	"github.com/robalobadob/wordl/assets"
)

// Dialects known to the bundled lists.
const (
	English  = "english"
	British  = "english/british"
	American = "english/american"
	Canadian = "english/canadian"
)

// Tiers are the commonality buckets, most common first.
var Tiers = []int{10, 20, 35, 40, 50}

// AllDialects are consulted when validating a guess.
var AllDialects = []string{English, British, American, Canadian}

// TierKey returns the key of a dialect's tier bucket, e.g. "english/35".
func TierKey(dialect string, tier int) string {
	return dialect + "/" + strconv.Itoa(tier)
}

// Store is an immutable mapping from dictionary keys to ordered word lists.
type Store struct {
	lists map[string][]string
}

// New copies lists into a Store. Later changes to lists are not observed.
func New(lists map[string][]string) *Store {
	s := &Store{lists: make(map[string][]string, len(lists))}
	for k, v := range lists {
		s.lists[k] = append([]string(nil), v...)
	}
	return s
}

// FromAssets builds a Store from the word lists bundled with the binary.
func FromAssets() (*Store, error) {
	lists, err := assets.WordLists()
	if err != nil {
		return nil, err
	}
	return &Store{lists: lists}, nil
}

// Words returns the list stored under key, or nil when the key is unknown.
// The returned slice must not be modified.
func (s *Store) Words(key string) []string {
	return s.lists[key]
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.lists))
	for k := range s.lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the total number of entries across all lists.
func (s *Store) Len() int {
	n := 0
	for _, v := range s.lists {
		n += len(v)
	}
	return n
}
