// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - LetterClass: what is known about a letter (ordered by informativeness).
//   - Game: state for a single in-progress or finished session.
//   - Toast: short feedback message produced by session actions.

package game

import (
	"fmt"
	"time"
)

// LetterClass classifies a letter against the target word.
// The order matters: Unevaluated < NotPresent < Misplaced < Located.
type LetterClass int

const (
	Unevaluated LetterClass = iota
	NotPresent
	Misplaced
	Located
)

var classNames = [...]string{
	Unevaluated: "unevaluated",
	NotPresent:  "absent",
	Misplaced:   "present",
	Located:     "correct",
}

func (c LetterClass) String() string {
	if c < Unevaluated || c > Located {
		return fmt.Sprintf("LetterClass(%d)", int(c))
	}
	return classNames[c]
}

// Max returns the more informative of c and o.
func (c LetterClass) Max(o LetterClass) LetterClass {
	if o > c {
		return o
	}
	return c
}

// MarshalText encodes the class by name so JSON clients need not know the ordering.
func (c LetterClass) MarshalText() ([]byte, error) {
	if c < Unevaluated || c > Located {
		return nil, fmt.Errorf("game: invalid letter class %d", int(c))
	}
	return []byte(classNames[c]), nil
}

func (c *LetterClass) UnmarshalText(b []byte) error {
	for i, name := range classNames {
		if name == string(b) {
			*c = LetterClass(i)
			return nil
		}
	}
	return fmt.Errorf("game: unknown letter class %q", b)
}

// Toast statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusInfo    = "info"
)

// Toast is user-facing feedback for a single action.
type Toast struct {
	Status      string `json:"status"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
}

// Game holds the state of a single session. It is plain data so it can be
// serialized into a shared store; it is not safe for concurrent use.
type Game struct {
	ID         string    `json:"id"`
	Player     string    `json:"player"`
	Target     string    `json:"target"`     // uppercase
	Length     int       `json:"length"`     // letters per word
	MaxGuesses int       `json:"maxGuesses"` // rows on the board
	Words      []string  `json:"words"`      // accepted guesses, uppercase
	Current    string    `json:"current"`    // guess being typed
	Won        bool      `json:"won"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Cell is one tile on the board.
type Cell struct {
	Letter string      `json:"letter"`
	Class  LetterClass `json:"class"`
}
