// play.go
//
// Terminal client. Each input line is one guess; "?" prints the keyboard and
// "quit" gives up. Tiles are colored like the browser game: green for a
// located letter, yellow for a misplaced one, grey for an absent one.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordl/internal/game"
)

var (
	tileLocated   = color.New(color.BgGreen, color.FgHiWhite, color.Bold)
	tileMisplaced = color.New(color.BgYellow, color.FgBlack, color.Bold)
	tileAbsent    = color.New(color.BgHiBlack, color.FgWhite)
	tilePending   = color.New(color.FgHiWhite)
	toastError    = color.New(color.FgRed)
	toastSuccess  = color.New(color.FgGreen, color.Bold)
	toastInfo     = color.New(color.FgCyan)
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func tile(c game.Cell) string {
	letter := c.Letter
	if letter == "" {
		letter = "_"
	}
	s := " " + letter + " "
	switch c.Class {
	case game.Located:
		return tileLocated.Sprint(s)
	case game.Misplaced:
		return tileMisplaced.Sprint(s)
	case game.NotPresent:
		return tileAbsent.Sprint(s)
	default:
		return tilePending.Sprint(s)
	}
}

func renderBoard(out io.Writer, g *game.Game) {
	for _, row := range g.Board() {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(tile(c))
		}
		fmt.Fprintln(out, b.String())
	}
}

func renderKeyboard(out io.Writer, g *game.Game) {
	keys := g.Keyboard()
	for i, row := range keyboardRows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", i))
		for _, r := range row {
			b.WriteString(tile(game.Cell{Letter: string(r), Class: keys[string(r)]}))
		}
		fmt.Fprintln(out, b.String())
	}
}

func renderToast(out io.Writer, t *game.Toast) {
	if t == nil {
		return
	}
	switch t.Status {
	case game.StatusError:
		toastError.Fprintln(out, t.Description)
	case game.StatusSuccess:
		toastSuccess.Fprintln(out, t.Description)
	default:
		toastInfo.Fprintln(out, t.Description)
	}
}

// play runs g to completion reading guesses from in.
func play(in io.Reader, out io.Writer, g *game.Game, dict game.Validator) error {
	fmt.Fprintf(out, "Hi %s! Guess the %d-letter word in %d tries.\n", g.Player, g.Length, g.MaxGuesses)

	sc := bufio.NewScanner(in)
	for !g.Finished() {
		fmt.Fprintf(out, "guess %d/%d> ", len(g.Words)+1, g.MaxGuesses)
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "?":
			renderKeyboard(out, g)
			continue
		case "quit":
			fmt.Fprintf(out, "The word was %s.\n", g.Target)
			return nil
		}

		for g.Current != "" {
			g.Backspace()
		}
		var toast *game.Toast
		for _, r := range line {
			if toast = g.Press(string(r), dict); toast != nil {
				break
			}
		}
		if toast == nil {
			toast = g.Press("Enter", dict)
		}
		renderToast(out, toast)
		renderBoard(out, g)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if g.Finished() && !g.Won {
		fmt.Fprintf(out, "The word was %s.\n", g.Target)
	}
	return nil
}
