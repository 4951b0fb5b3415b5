// internal/game/session.go
//
// Session controller for a single game: the guess buffer, accepted guesses
// and the feedback shown to the player.
//
// Rules:
//   - Letters are typed one at a time into Current, up to Length.
//   - Enter accepts Current only when it is complete and a dictionary word.
//   - A match ends the game with a praise toast; running out of rows ends it
//     with an info toast. After that every action reports an error.

package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

const (
	DefaultLength  = 5
	DefaultGuesses = 6

	// MaxGuessesLimit bounds MaxGuesses; the board holds one row per guess.
	MaxGuessesLimit = 32
)

var (
	// ErrGuessLimit is returned by Start when maxGuesses exceeds MaxGuessesLimit.
	ErrGuessLimit = errors.New("game: too many guesses")
	// ErrUnplayable is returned by Start for a target that cannot be typed
	// on an A-Z keyboard.
	ErrUnplayable = errors.New("game: target has untypeable letters")
)

// Praise is shown on a win, indexed by the number of earlier accepted guesses.
var Praise = []string{"Genius", "Unbelievable", "Impressive", "Splendid", "Good work", "Phew"}

// Validator decides whether a guess is an acceptable word.
type Validator interface {
	IsWord(candidate string) bool
}

// Start validates target and maxGuesses, then starts a game.
func Start(target string, maxGuesses int) (*Game, error) {
	if maxGuesses > MaxGuessesLimit {
		return nil, fmt.Errorf("%w: %d > %d", ErrGuessLimit, maxGuesses, MaxGuessesLimit)
	}
	if !Playable(target) {
		return nil, fmt.Errorf("%w: %q", ErrUnplayable, target)
	}
	return New(target, maxGuesses), nil
}

// Playable reports whether every letter of target is in A-Z, ignoring case.
func Playable(target string) bool {
	for _, r := range strings.ToUpper(target) {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// New starts a game for target (upper-cased). maxGuesses <= 0 selects
// DefaultGuesses and larger values are capped at MaxGuessesLimit.
func New(target string, maxGuesses int) *Game {
	if maxGuesses <= 0 {
		maxGuesses = DefaultGuesses
	}
	maxGuesses = min(maxGuesses, MaxGuessesLimit)
	target = strings.ToUpper(target)
	return &Game{
		ID:         uuid.NewString(),
		Player:     petname.Generate(2, "-"),
		Target:     target,
		Length:     len([]rune(target)),
		MaxGuesses: maxGuesses,
		Words:      []string{},
		CreatedAt:  time.Now().UTC(),
	}
}

func errorToast(msg string) *Toast {
	return &Toast{Status: StatusError, Title: "Error", Description: msg}
}

// Press handles a key name as delivered by a keyboard event: "Enter",
// "Backspace", modifier names (ignored) or a single character.
// It returns nil when the key produced no feedback.
func (g *Game) Press(key string, dict Validator) *Toast {
	if len([]rune(key)) == 1 {
		return g.Type(key)
	}
	switch key {
	case "Backspace":
		return g.Backspace()
	case "Enter":
		return g.Enter(dict)
	case "Shift", "Control", "Option", "Meta", "Alt":
		return nil
	default:
		return errorToast("No action for " + key)
	}
}

// Type appends a letter to the guess in progress.
func (g *Game) Type(key string) *Toast {
	k := strings.ToUpper(key)
	if len(k) != 1 || k[0] < 'A' || k[0] > 'Z' {
		return errorToast("Press a letter")
	}
	if g.Won {
		return errorToast("Game over")
	}
	if g.Remaining() == 0 {
		return errorToast("No more guesses")
	}
	if len(g.Current) >= g.Length {
		return errorToast("Word is long enough. Use backspace to erase last character.")
	}
	g.Current += k
	return nil
}

// Backspace removes the last typed letter. Accepted guesses cannot be undone.
func (g *Game) Backspace() *Toast {
	if g.Current == "" {
		return errorToast("Can't undo guess")
	}
	g.Current = g.Current[:len(g.Current)-1]
	return nil
}

// Enter submits the guess in progress.
func (g *Game) Enter(dict Validator) *Toast {
	if g.Won {
		return errorToast("Game over")
	}
	if g.Remaining() == 0 {
		return errorToast("No more guesses")
	}
	word := g.Current
	if len(word) < g.Length {
		return errorToast("Please finish your guess")
	}
	if !dict.IsWord(word) {
		return errorToast(word + " is not in our dictionary")
	}

	try := len(g.Words)
	g.Words = append(g.Words, word)
	g.Current = ""

	if allLocated(Score(word, g.Target)) {
		g.Won = true
		return &Toast{Status: StatusSuccess, Description: praiseFor(try)}
	}
	if try == g.MaxGuesses-1 {
		return &Toast{Status: StatusInfo, Description: "Oh well. Better luck next time"}
	}
	return nil
}

func praiseFor(try int) string {
	if try >= len(Praise) {
		return Praise[len(Praise)-1]
	}
	return Praise[try]
}

// Remaining reports how many guesses are left.
func (g *Game) Remaining() int {
	return g.MaxGuesses - len(g.Words)
}

// Finished reports whether the game is won or out of guesses.
func (g *Game) Finished() bool {
	return g.Won || g.Remaining() <= 0
}

// State is "playing", "won" or "lost".
func (g *Game) State() string {
	switch {
	case g.Won:
		return "won"
	case g.Remaining() <= 0:
		return "lost"
	default:
		return "playing"
	}
}

// Board returns MaxGuesses rows of Length cells. Accepted rows are scored;
// the row being typed shows its letters unevaluated.
func (g *Game) Board() [][]Cell {
	rows := make([][]Cell, g.MaxGuesses)
	for i := range rows {
		row := make([]Cell, g.Length)
		switch {
		case i < len(g.Words):
			word := []rune(g.Words[i])
			for j, c := range Score(g.Words[i], g.Target) {
				row[j] = Cell{Letter: string(word[j]), Class: c}
			}
		case i == len(g.Words):
			for j, r := range g.Current {
				row[j] = Cell{Letter: string(r)}
			}
		}
		rows[i] = row
	}
	return rows
}

// Keyboard maps every letter A-Z to what the accepted guesses revealed about it.
func (g *Game) Keyboard() map[string]LetterClass {
	keys := make(map[string]LetterClass, 26)
	for r := 'A'; r <= 'Z'; r++ {
		keys[string(r)] = EvaluateLetter(r, g.Target, g.Words)
	}
	return keys
}
