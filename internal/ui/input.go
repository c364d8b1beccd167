package ui

import "github.com/nsf/termbox-go"

// Key identifies which logical key an Input carries.
type Key int

const (
	KeyNone Key = iota
	KeyLetter
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyResize
)

// Input is one logical input event.
type Input struct {
	Key Key
	Ch  rune // set for KeyLetter
}

// Letter builds a KeyLetter input.
func Letter(c rune) Input { return Input{Key: KeyLetter, Ch: c} }

// translate maps a termbox event onto an Input; unsupported events become KeyNone.
func translate(ev termbox.Event) Input {
	switch ev.Type {
	case termbox.EventResize:
		return Input{Key: KeyResize}
	case termbox.EventKey:
	default:
		return Input{}
	}
	if ev.Ch != 0 {
		if (ev.Ch >= 'a' && ev.Ch <= 'z') || (ev.Ch >= 'A' && ev.Ch <= 'Z') {
			return Letter(ev.Ch)
		}
		return Input{}
	}
	switch ev.Key {
	case termbox.KeyEnter:
		return Input{Key: KeyEnter}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return Input{Key: KeyBackspace}
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return Input{Key: KeyEscape}
	}
	return Input{}
}
