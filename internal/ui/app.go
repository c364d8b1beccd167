// internal/ui/app.go
//
// The App owns one game and drives it from a stream of inputs:
//   - letters, Backspace and Enter mutate the grid and submit rows,
//   - submitted rows are revealed one tile at a time,
//   - typed keys flash briefly on the on-screen keyboard,
//   - Win/Loss hold the final board for a moment, Escape leaves at once.
//
// Everything runs on the goroutine that calls Run; timers are plain channels
// selected alongside the input stream.

package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// Options tunes timing and labels.
type Options struct {
	Title       string
	RevealDelay time.Duration // per tile; 0 reveals at once
	BlinkDelay  time.Duration // 0 disables key flashes
	EndDelay    time.Duration // 0 returns as soon as the game ends
}

// Outcome is how a session ended.
type Outcome struct {
	State     game.State
	Abandoned bool // Escape or interrupt before Win/Loss
	Secret    string
	Guesses   int
}

// Message is the line printed once the terminal has been restored.
func (o Outcome) Message() string {
	switch {
	case o.State == game.Won:
		return fmt.Sprintf("You won in %d/%d! The word was %s.", o.Guesses, game.Rows, o.Secret)
	case o.State == game.Lost:
		return fmt.Sprintf("You lose! The word was: %s", o.Secret)
	default:
		return "Bye!"
	}
}

type App struct {
	game   *game.Game
	canvas Canvas
	theme  Theme
	opts   Options

	status    string
	revealRow int
	revealed  int
	keys      *[26]game.KeyTag // keyboard shown during a reveal
	blink     rune
	done      bool
	abandoned bool

	revealC <-chan time.Time
	blinkC  <-chan time.Time
	endC    <-chan time.Time
}

// New prepares an App; nothing is drawn until Run.
func New(g *game.Game, c Canvas, th Theme, opts Options) *App {
	if opts.Title == "" {
		opts.Title = "WORDLE"
	}
	return &App{game: g, canvas: c, theme: th, opts: opts, revealRow: -1}
}

// Run processes inputs until the game ends, Escape is pressed, the input
// stream closes or ctx is cancelled. A render failure is returned as an error.
func (a *App) Run(ctx context.Context, inputs <-chan Input) (Outcome, error) {
	if err := a.draw(); err != nil {
		return a.outcome(), err
	}
	for !a.done {
		select {
		case <-ctx.Done():
			a.quit()
		case in, ok := <-inputs:
			if !ok {
				a.quit()
				break
			}
			a.handle(in)
		case <-a.revealC:
			a.stepReveal()
		case <-a.blinkC:
			a.blink, a.blinkC = 0, nil
		case <-a.endC:
			a.done = true
		}
		if a.done {
			break
		}
		if err := a.draw(); err != nil {
			return a.outcome(), err
		}
	}
	return a.outcome(), nil
}

func (a *App) handle(in Input) {
	switch in.Key {
	case KeyEscape:
		a.quit()
		return
	case KeyResize:
		return
	}

	if a.game.State().Terminal() {
		// the final board is showing; Enter skips the wait
		if in.Key == KeyEnter && a.revealRow < 0 {
			a.done = true
		}
		return
	}
	if a.revealRow >= 0 {
		return
	}

	switch in.Key {
	case KeyLetter:
		a.typeLetter(in.Ch)
	case KeyBackspace:
		if a.game.Grid().Cursor().Col > 0 {
			if err := a.game.RemoveChar(); err != nil {
				log.Debug().Err(err).Msg("remove char")
			}
		}
		a.status = ""
	case KeyEnter:
		a.submit()
	}
}

func (a *App) typeLetter(c rune) {
	if !a.game.CanType() {
		return
	}
	if !a.game.TypeChar(c) {
		return
	}
	a.status = ""
	if a.opts.BlinkDelay > 0 && a.game.Keyboard().TagOf(c) == game.KeyUnused {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		a.blink = c
		a.blinkC = time.After(a.opts.BlinkDelay)
	}
}

func (a *App) submit() {
	before := a.game.Keyboard().Tags()
	row := a.game.Grid().Cursor().Row

	v, st, err := a.game.Submit()
	switch {
	case errors.Is(err, game.ErrIncompleteRow):
		a.status = "Not enough letters"
		return
	case errors.Is(err, game.ErrNotInWordList):
		a.status = "Not in word list"
		return
	case err != nil:
		log.Warn().Err(err).Msg("submit")
		return
	}
	log.Debug().Int("row", row).Int("exact", v.Exact).Str("state", st.String()).Msg("row verified")

	a.status = ""
	a.blink, a.blinkC = 0, nil
	if a.opts.RevealDelay <= 0 {
		a.finishReveal()
		return
	}
	a.keys = &before
	a.revealRow, a.revealed = row, 0
	a.revealC = time.After(a.opts.RevealDelay)
}

func (a *App) stepReveal() {
	a.revealed++
	if a.revealed >= game.Cols {
		a.finishReveal()
		return
	}
	a.revealC = time.After(a.opts.RevealDelay)
}

func (a *App) finishReveal() {
	a.revealRow, a.revealed, a.keys, a.revealC = -1, 0, nil, nil
	switch a.game.State() {
	case game.Won:
		a.status = "You won!"
	case game.Lost:
		a.status = "You lose! The word was: " + a.game.Secret()
	default:
		return
	}
	if a.opts.EndDelay <= 0 {
		a.done = true
		return
	}
	a.endC = time.After(a.opts.EndDelay)
}

func (a *App) quit() {
	if !a.game.State().Terminal() {
		a.abandoned = true
	}
	a.done = true
}

func (a *App) draw() error {
	w, _ := a.canvas.Size()
	return render(a.canvas, a.theme.Background, layout(a.view(), a.theme, w))
}

func (a *App) view() view {
	v := view{
		title:     a.opts.Title,
		snap:      a.game.Snapshot(),
		revealRow: a.revealRow,
		revealed:  a.revealed,
		blink:     a.blink,
		status:    a.status,
	}
	v.keys = v.snap.Keys
	if a.keys != nil {
		v.keys = *a.keys
	}
	return v
}

func (a *App) outcome() Outcome {
	o := Outcome{
		State:     a.game.State(),
		Abandoned: a.abandoned,
		Guesses:   len(a.game.Guesses),
	}
	if o.State.Terminal() {
		o.Secret = a.game.Secret()
	}
	return o
}
