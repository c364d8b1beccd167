// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Own the grid, keyboard and secret word for one playthrough.
//   - Route typed letters and deletions to the active row.
//   - Verify a submitted row, colour tiles and keys, and step the state machine:
//     Guessing(row) -> Won | Lost, both terminal.
//
// Scoring is selected by Rules; see types.go.
package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSecret = errors.New("secret must be 5 letters")
	ErrIncompleteRow = errors.New("not enough letters")
	ErrNotInWordList = errors.New("not in word list")
	ErrGameOver      = errors.New("game finished")
)

// Dictionary answers membership queries for strict mode.
type Dictionary interface {
	Contains(word string) bool
}

// Options tunes a new game.
type Options struct {
	Rules      Rules
	Dictionary Dictionary // non-nil rejects guesses that are not listed
}

// Game holds the state of a single session.
type Game struct {
	ID        string
	StartedAt time.Time
	Guesses   []string // submitted rows, in order

	secret   string
	rules    Rules
	dict     Dictionary
	grid     *Grid
	keyboard *Keyboard
	state    State
}

// New starts a session for secret, which is uppercased.
func New(secret string, opts Options) (*Game, error) {
	secret = strings.ToUpper(strings.TrimSpace(secret))
	if !isWord(secret) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret)
	}
	rules, err := ParseRules(string(opts.Rules))
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		secret:    secret,
		rules:     rules,
		dict:      opts.Dictionary,
		grid:      NewGrid(),
		keyboard:  NewKeyboard(rules),
	}, nil
}

// State returns the current session state.
func (g *Game) State() State { return g.state }

// Rules returns the scoring rule set.
func (g *Game) Rules() Rules { return g.rules }

// Secret returns the secret word. Callers only show it once the game is over.
func (g *Game) Secret() string { return g.secret }

// Grid exposes the grid for read access.
func (g *Game) Grid() *Grid { return g.grid }

// Keyboard exposes the keyboard for read access.
func (g *Game) Keyboard() *Keyboard { return g.keyboard }

// CanType reports whether a typed letter would be accepted.
func (g *Game) CanType() bool {
	return !g.state.Terminal() && g.grid.CanType()
}

// TypeChar forwards a letter to the active row. It returns false when the
// letter was not accepted.
func (g *Game) TypeChar(c rune) bool {
	if g.state.Terminal() {
		return false
	}
	return g.grid.TypeChar(c)
}

// RemoveChar deletes from the active row.
func (g *Game) RemoveChar() error {
	if g.state.Terminal() {
		return ErrGameOver
	}
	return g.grid.RemoveChar()
}

// Submit verifies the active row.
//
// Validation rules:
//   - Game must not be finished.
//   - Every cell of the row must be filled.
//   - In strict mode the word must be in the dictionary.
//
// State transitions:
//   - All tiles ExactMatch -> Won.
//   - Else if the last row was used -> Lost.
//   - Else the cursor moves to the next row, column 0.
func (g *Game) Submit() (Verification, State, error) {
	if g.state.Terminal() {
		return Verification{}, g.state, ErrGameOver
	}
	if !g.grid.RowFull() {
		return Verification{}, g.state, ErrIncompleteRow
	}
	guess := g.grid.RowWord()
	if g.dict != nil && !g.dict.Contains(guess) {
		return Verification{}, g.state, ErrNotInWordList
	}

	v := Verify(guess, g.secret, g.keyboard, g.rules)
	g.grid.setFeedback(v.Feedback)
	g.Guesses = append(g.Guesses, guess)

	switch {
	case v.Exact == Cols:
		g.state = Won
	case g.grid.Cursor().Row == Rows-1:
		g.state = Lost
	default:
		g.grid.advance()
	}
	return v, g.state, nil
}

// Snapshot is a read-only copy of everything the renderer draws.
type Snapshot struct {
	Cells    [Rows][Cols]rune
	Feedback [Rows][Cols]Feedback
	Keys     [26]KeyTag
	Cursor   Cursor
	State    State
	Secret   string // empty until the game is over
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Cells:    g.grid.cells,
		Feedback: g.grid.feedback,
		Keys:     g.keyboard.Tags(),
		Cursor:   g.grid.cursor,
		State:    g.state,
	}
	if g.state.Terminal() {
		s.Secret = g.secret
	}
	return s
}

// isWord checks that s is Cols uppercase ASCII letters.
func isWord(s string) bool {
	if len(s) != Cols {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
