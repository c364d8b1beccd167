package ui

import (
	"context"

	"github.com/nsf/termbox-go"
	"github.com/rs/zerolog/log"
)

// Canvas is the drawing surface the board is rendered onto.
type Canvas interface {
	Size() (width, height int)
	Clear(bg Style)
	SetCell(x, y int, ch rune, st Style)
	Flush() error
}

// The Screen is a Canvas over the terminal.
type Screen struct{}

// OpenScreen takes over the terminal.
func OpenScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	termbox.HideCursor()
	return &Screen{}, nil
}

// Close restores the terminal. A pending Events goroutine is left blocked
// in PollEvent; it only lives until the process exits.
func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() (int, int) { return termbox.Size() }

func (s *Screen) Clear(bg Style) { _ = termbox.Clear(bg.Fg, bg.Bg) }

func (s *Screen) SetCell(x, y int, ch rune, st Style) {
	termbox.SetCell(x, y, ch, st.Fg, st.Bg)
}

func (s *Screen) Flush() error { return termbox.Flush() }

// Events polls the terminal until ctx is done or the screen is closed,
// delivering translated inputs one at a time in arrival order.
func (s *Screen) Events(ctx context.Context) <-chan Input {
	out := make(chan Input)
	go func() {
		defer close(out)
		for {
			ev := termbox.PollEvent()
			switch ev.Type {
			case termbox.EventInterrupt:
				return
			case termbox.EventError:
				log.Error().Err(ev.Err).Msg("terminal event")
				continue
			}
			in := translate(ev)
			if in.Key == KeyNone {
				continue
			}
			select {
			case out <- in:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
