// internal/words/words.go
//
// Target selection and guess validation over a dictionary.Store.
//
// Selection pool:
//   - The tier lists of the selection dialects ("english/10" ... "english/50"),
//     walked dialect by dialect, tier by tier.
//   - Only entries of the requested length that are already lowercase are
//     eligible; capitalized entries (proper nouns) are never targets.
//   - Each eligible entry is equally likely, so a word listed in two tiers is
//     twice as likely as a word listed once.
//
// Validation:
//   - The candidate is lower-cased and looked up in every supported dialect.

package words

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/robalobadob/wordl/internal/dictionary"
	"github.com/robalobadob/wordl/internal/metrics"
)

// ErrInvalidLength is returned when no eligible word has the requested length.
var ErrInvalidLength = errors.New("no words of this length")

// Source draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Selector picks targets and validates guesses. It is safe for concurrent
// use when its Source is.
type Selector struct {
	dict       *dictionary.Store
	source     Source
	dialects   []string // selection dialects
	tiers      []int
	validation []string // dialects consulted by IsWord
	metrics    *metrics.Metrics

	eligible map[int][]string
	known    []map[string]struct{}
}

// Option configures a Selector.
type Option func(*Selector)

// WithSource replaces the random draw source.
func WithSource(src Source) Option {
	return func(s *Selector) { s.source = src }
}

// WithDialects sets the dialects targets are drawn from.
func WithDialects(dialects ...string) Option {
	return func(s *Selector) { s.dialects = dialects }
}

// WithTiers sets the commonality tiers targets are drawn from.
func WithTiers(tiers ...int) Option {
	return func(s *Selector) { s.tiers = tiers }
}

// WithMetrics counts drawn words.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Selector) { s.metrics = m }
}

// New builds a Selector over dict. By default targets come from the primary
// dialect in every tier, and guesses are checked against all dialects.
func New(dict *dictionary.Store, opts ...Option) *Selector {
	s := &Selector{
		dict:       dict,
		source:     globalSource{},
		dialects:   []string{dictionary.English},
		tiers:      dictionary.Tiers,
		validation: dictionary.AllDialects,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.eligible = make(map[int][]string)
	for _, d := range s.dialects {
		for _, t := range s.tiers {
			for _, w := range dict.Words(dictionary.TierKey(d, t)) {
				if strings.ToLower(w) == w {
					n := len([]rune(w))
					s.eligible[n] = append(s.eligible[n], w)
				}
			}
		}
	}

	s.known = make([]map[string]struct{}, 0, len(s.validation))
	for _, d := range s.validation {
		set := make(map[string]struct{}, len(dict.Words(d)))
		for _, w := range dict.Words(d) {
			set[w] = struct{}{}
		}
		s.known = append(s.known, set)
	}
	return s
}

// RandomWord returns an upper-cased target of the given length.
// Length 0 is legal and only matches an empty entry.
func (s *Selector) RandomWord(length int) (string, error) {
	return s.draw(length, s.source)
}

// WordFrom is RandomWord with a one-off source, e.g. a daily source.
func (s *Selector) WordFrom(length int, src Source) (string, error) {
	return s.draw(length, src)
}

func (s *Selector) draw(length int, src Source) (string, error) {
	pool := s.eligible[length]
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	word := pool[src.IntN(len(pool))]
	if s.metrics != nil {
		s.metrics.IncrementWordsDrawn(strconv.Itoa(length))
	}
	return strings.ToUpper(word), nil
}

// Eligible reports how many pool entries have the given length.
func (s *Selector) Eligible(length int) int {
	return len(s.eligible[length])
}

// IsWord reports whether candidate, lower-cased, appears in any supported dialect.
func (s *Selector) IsWord(candidate string) bool {
	w := strings.ToLower(candidate)
	for _, set := range s.known {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}
