// internal/game/engine.go
//
// Letter evaluation for guesses.
//   - Evaluate classifies one letter at one position.
//   - EvaluateLetter folds Evaluate over every previous attempt (keyboard colors).
//   - Score classifies a whole guess (board row colors).
//
// All functions are pure. Comparisons are case-sensitive; callers normalize case.

package game

// Evaluate classifies letter at position against target: Located when
// target[position] is letter, Misplaced when letter occurs elsewhere in
// target, NotPresent otherwise. An out-of-range position (negative included)
// can never be Located.
func Evaluate(letter rune, position int, target string) LetterClass {
	key := []rune(target)
	if position >= 0 && position < len(key) && key[position] == letter {
		return Located
	}
	for _, r := range key {
		if r == letter {
			return Misplaced
		}
	}
	return NotPresent
}

// EvaluateLetter returns the most informative class of letter seen across
// attempts. A letter that was never guessed stays Unevaluated.
func EvaluateLetter(letter rune, target string, attempts []string) LetterClass {
	result := Unevaluated
	for _, w := range attempts {
		for j, l := range []rune(w) {
			if l == letter {
				result = result.Max(Evaluate(letter, j, target))
			}
		}
	}
	return result
}

// Score classifies each letter of guess against target.
func Score(guess, target string) []LetterClass {
	letters := []rune(guess)
	out := make([]LetterClass, len(letters))
	for i, l := range letters {
		out[i] = Evaluate(l, i, target)
	}
	return out
}

// allLocated reports whether every class is Located.
func allLocated(cs []LetterClass) bool {
	for _, c := range cs {
		if c != Located {
			return false
		}
	}
	return len(cs) > 0
}
