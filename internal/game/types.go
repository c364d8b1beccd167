// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Feedback: per-tile result of verifying a row.
//   - KeyTag: per-letter colouring of the on-screen keyboard.
//   - State: Guessing / Won / Lost.
//   - Rules: which scoring rule set a game uses.

package game

import "fmt"

const (
	Rows = 5 // guesses per session
	Cols = 5 // letters per word
)

const blank = ' '

// Feedback is the evaluation of a single grid tile.
type Feedback int

const (
	Unevaluated Feedback = iota
	ExactMatch
	PresentElsewhere
	Absent
)

func (f Feedback) String() string {
	switch f {
	case ExactMatch:
		return "exact"
	case PresentElsewhere:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unevaluated"
	}
}

// KeyTag is the accumulated colouring of one keyboard letter.
// Values are ordered weakest to strongest.
type KeyTag int

const (
	KeyUnused KeyTag = iota
	KeyUsed
	KeyPresent
	KeyExact
)

func (k KeyTag) String() string {
	switch k {
	case KeyUsed:
		return "used"
	case KeyPresent:
		return "present"
	case KeyExact:
		return "exact"
	default:
		return "unused"
	}
}

// keyTagFor maps tile feedback onto the keyboard tag it produces.
func keyTagFor(f Feedback) KeyTag {
	switch f {
	case ExactMatch:
		return KeyExact
	case PresentElsewhere:
		return KeyPresent
	case Absent:
		return KeyUsed
	default:
		return KeyUnused
	}
}

// State is the coarse session state.
type State int

const (
	Guessing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether no further input is accepted.
func (s State) Terminal() bool { return s == Won || s == Lost }

// Rules selects the scoring behaviour.
//
//   - RulesReference: a letter is "present" whenever the secret contains it,
//     regardless of how many times it was already matched, and the keyboard
//     always shows the latest result for a letter.
//   - RulesStandard: two-pass scoring that consumes letter counts, and the
//     keyboard only ever upgrades (exact > present > used > unused).
type Rules string

const (
	RulesReference Rules = "reference"
	RulesStandard  Rules = "standard"
)

// ParseRules validates a rule set name. Empty selects RulesReference.
func ParseRules(s string) (Rules, error) {
	switch Rules(s) {
	case "", RulesReference:
		return RulesReference, nil
	case RulesStandard:
		return RulesStandard, nil
	}
	return "", fmt.Errorf("unknown rules %q (want %q or %q)", s, RulesReference, RulesStandard)
}

// Cursor is the active (row, column) of the grid.
type Cursor struct {
	Row int
	Col int
}
