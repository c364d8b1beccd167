package ui

import (
	"github.com/nsf/termbox-go"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// Style is a foreground/background attribute pair.
type Style struct {
	Fg termbox.Attribute
	Bg termbox.Attribute
}

// Theme holds every colour the board uses. It is built once at startup and
// handed to the App.
type Theme struct {
	Background Style
	Title      Style
	Status     Style

	TileBlank   Style
	TileCursor  Style
	TileExact   Style
	TilePresent Style
	TileAbsent  Style

	KeyUnused  Style
	KeyUsed    Style
	KeyPresent Style
	KeyExact   Style
	KeyBlink   Style
}

// DefaultTheme mirrors the classic board: grey blanks, dark grey misses,
// yellow for present letters and green for exact ones.
func DefaultTheme() Theme {
	return Theme{
		Background: Style{termbox.ColorDefault, termbox.ColorDefault},
		Title:      Style{termbox.ColorWhite | termbox.AttrBold, termbox.ColorDefault},
		Status:     Style{termbox.ColorWhite, termbox.ColorDefault},

		TileBlank:   Style{termbox.ColorWhite | termbox.AttrBold, termbox.ColorLightGray},
		TileCursor:  Style{termbox.ColorBlack | termbox.AttrBold, termbox.ColorWhite},
		TileExact:   Style{termbox.ColorBlack | termbox.AttrBold, termbox.ColorGreen},
		TilePresent: Style{termbox.ColorBlack | termbox.AttrBold, termbox.ColorYellow},
		TileAbsent:  Style{termbox.ColorWhite | termbox.AttrBold, termbox.ColorDarkGray},

		KeyUnused:  Style{termbox.ColorWhite | termbox.AttrBold, termbox.ColorLightGray},
		KeyUsed:    Style{termbox.ColorWhite, termbox.ColorDarkGray},
		KeyPresent: Style{termbox.ColorBlack | termbox.AttrBold, termbox.ColorYellow},
		KeyExact:   Style{termbox.ColorBlack | termbox.AttrBold, termbox.ColorGreen},
		KeyBlink:   Style{termbox.ColorWhite | termbox.AttrBold, termbox.ColorDarkGray},
	}
}

func (t Theme) tile(f game.Feedback) Style {
	switch f {
	case game.ExactMatch:
		return t.TileExact
	case game.PresentElsewhere:
		return t.TilePresent
	case game.Absent:
		return t.TileAbsent
	default:
		return t.TileBlank
	}
}

func (t Theme) key(k game.KeyTag) Style {
	switch k {
	case game.KeyExact:
		return t.KeyExact
	case game.KeyPresent:
		return t.KeyPresent
	case game.KeyUsed:
		return t.KeyUsed
	default:
		return t.KeyUnused
	}
}
