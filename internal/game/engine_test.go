package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		letter   rune
		position int
		target   string
		want     LetterClass
	}{
		{'A', 0, "BRAVE", Misplaced},
		{'B', 0, "BRAVE", Located},
		{'C', 0, "BRAVE", NotPresent},
		{'D', 2, "DADDY", Located},
		{'E', 3, "EAGLE", Misplaced},
		{'F', 4, "SHEAF", Located},
		{'G', 5, "GROGG", Misplaced},
		{'H', 5, "SLEIGHT", Located},
		{'I', 4, "TEAM", NotPresent},
		{'J', -1, "APPLEJUICE", Misplaced},
		{'e', 4, "SMILE", NotPresent},
	}
	for _, tt := range tests {
		got := Evaluate(tt.letter, tt.position, tt.target)
		assert.Equal(t, tt.want, got, "%c:%d in %s", tt.letter, tt.position, tt.target)
	}
}

func TestEvaluateMatchesDefinition(t *testing.T) {
	targets := []string{"SMILE", "DADDY", "A", "LEVEE", "GROGG"}
	for _, target := range targets {
		for l := 'A'; l <= 'Z'; l++ {
			for p := -2; p < len(target)+2; p++ {
				want := NotPresent
				switch {
				case p >= 0 && p < len(target) && rune(target[p]) == l:
					want = Located
				case containsRune(target, l):
					want = Misplaced
				}
				require.Equal(t, want, Evaluate(l, p, target), "%c:%d in %s", l, p, target)
			}
		}
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func TestEvaluateLetter(t *testing.T) {
	t.Run("no attempts", func(t *testing.T) {
		assert.Equal(t, Unevaluated, EvaluateLetter('A', "SMILE", nil))
		assert.Equal(t, Unevaluated, EvaluateLetter('E', "SMILE", []string{}))
	})

	t.Run("one attempt", func(t *testing.T) {
		attempts := []string{"LEVEE"}
		assert.Equal(t, Unevaluated, EvaluateLetter('D', "CAMEL", attempts))
		assert.Equal(t, Unevaluated, EvaluateLetter('C', "CAMEL", attempts))
		assert.Equal(t, NotPresent, EvaluateLetter('V', "CAMEL", attempts))
		assert.Equal(t, Misplaced, EvaluateLetter('L', "CAMEL", attempts))
		assert.Equal(t, Located, EvaluateLetter('E', "CAMEL", attempts))
	})

	t.Run("many attempts", func(t *testing.T) {
		attempts := []string{"SQUID", "PRISM", "LEVEL"}
		assert.Equal(t, Unevaluated, EvaluateLetter('C', "SMILE", attempts))
		assert.Equal(t, Unevaluated, EvaluateLetter('O', "MOLES", attempts))
		assert.Equal(t, NotPresent, EvaluateLetter('V', "SMILE", attempts))
		assert.Equal(t, Located, EvaluateLetter('S', "SMILE", attempts))
		assert.Equal(t, Misplaced, EvaluateLetter('M', "SMILE", attempts))
		assert.Equal(t, Located, EvaluateLetter('I', "SMILE", attempts))
		assert.Equal(t, Misplaced, EvaluateLetter('L', "SMILE", attempts))
		assert.Equal(t, Misplaced, EvaluateLetter('E', "SMILE", attempts))
	})
}

func TestEvaluateLetterNeverDowngrades(t *testing.T) {
	attempts := []string{"SMOKE", "MOSSY", "SLOTS", "HOUSE"}
	for l := 'A'; l <= 'Z'; l++ {
		prev := Unevaluated
		for i := range attempts {
			got := EvaluateLetter(l, "SMILE", attempts[:i+1])
			require.GreaterOrEqual(t, got, prev, "letter %c after %d attempts", l, i+1)
			prev = got
		}
	}
	assert.Equal(t, Located, EvaluateLetter('S', "SMILE", attempts))
}

func TestScore(t *testing.T) {
	assert.Equal(t,
		[]LetterClass{Located, Located, Located, Located, NotPresent},
		Score("SMILX", "SMILE"))
	assert.Equal(t,
		[]LetterClass{Located, Located, Located, Located, Located},
		Score("SMILE", "SMILE"))
	assert.Equal(t,
		[]LetterClass{Misplaced, Misplaced, Misplaced, Misplaced, Misplaced},
		Score("MILES", "SMILE"))
	assert.Empty(t, Score("", "SMILE"))
}

func TestLetterClassOrderAndText(t *testing.T) {
	assert.Less(t, Unevaluated, NotPresent)
	assert.Less(t, NotPresent, Misplaced)
	assert.Less(t, Misplaced, Located)
	assert.Equal(t, Located, Misplaced.Max(Located))
	assert.Equal(t, Located, Located.Max(NotPresent))

	b, err := json.Marshal(map[string]LetterClass{"S": Located, "Q": NotPresent})
	require.NoError(t, err)
	assert.JSONEq(t, `{"S":"correct","Q":"absent"}`, string(b))

	var c LetterClass
	require.NoError(t, c.UnmarshalText([]byte("present")))
	assert.Equal(t, Misplaced, c)
	assert.Error(t, c.UnmarshalText([]byte("purple")))
	assert.Equal(t, "LetterClass(9)", LetterClass(9).String())
}
